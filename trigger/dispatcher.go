package trigger

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"geodb/omtg"
	"geodb/rules"
	"geodb/schema"
)

// StatementKind identifies a completed mutating statement
type StatementKind string

const (
	StatementInsert StatementKind = "insert"
	StatementUpdate StatementKind = "update"
	StatementDelete StatementKind = "delete"
)

// attachKey is the explicit identity of an attachment. Idempotency is a
// map probe on this key, never a hook-name collision probe. Cross-table
// attachments carry the relationship name so two relationships sharing a
// (table, class, column) tuple each keep their own hook.
type attachKey struct {
	table  string
	class  omtg.Class
	column string
	rel    string
}

// hook is one validator bound to a table
type hook struct {
	id       string
	binding  rules.Binding
	validate rules.Validator
}

// Dispatcher holds the attachment table and orchestrates validation: it
// attaches validators to tables as the classifier reports geometry
// columns, and runs every attached validator when a mutating statement
// completes on a table.
type Dispatcher struct {
	mu       sync.Mutex
	registry *rules.Registry
	preds    rules.Predicates
	log      *logrus.Logger
	attached map[attachKey]string
	hooks    map[string][]*hook
}

// NewDispatcher creates a dispatcher over a rule registry and a predicate
// provider. A nil logger falls back to the standard logger.
func NewDispatcher(registry *rules.Registry, preds rules.Predicates, logger *logrus.Logger) *Dispatcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Dispatcher{
		registry: registry,
		preds:    preds,
		log:      logger,
		attached: make(map[attachKey]string),
		hooks:    make(map[string][]*hook),
	}
}

// TableChanged handles a schema-change event (create or alter): it
// classifies the table's geometry columns and ensures each classified
// column has its validator attached. Unrecognized domains are logged and
// skipped, never fatal. Safe to re-run on every event and on catalog load.
func (d *Dispatcher) TableChanged(table *schema.Table) {
	cols, skipped := omtg.Classify(table)
	for _, column := range skipped {
		d.log.WithFields(logrus.Fields{
			"table":  table.Name,
			"column": column,
		}).Warn("unrecognized spatial domain, column skipped")
	}
	for _, gc := range cols {
		d.EnsureAttached(gc.Table, gc.Class, gc.Column)
	}
}

// EnsureAttached attaches the class's validator to the table exactly
// once. Re-attaching an already-attached tuple is a no-op returning the
// existing hook ID. Classes without a registered validator are skipped
// with attached=false: a placeholder for future classes, not a failure.
func (d *Dispatcher) EnsureAttached(table string, class omtg.Class, column string) (hookID string, attached bool) {
	validator, ok := d.registry.Lookup(class)
	if !ok {
		d.log.WithFields(logrus.Fields{
			"table":  table,
			"column": column,
			"class":  class.String(),
		}).Debug("class has no validator, attachment skipped")
		return "", false
	}

	binding := rules.Binding{Class: class, Table: table, Column: column}
	return d.ensureHook(attachKey{table: table, class: class, column: column}, table, binding, validator)
}

// AttachRelationship attaches a cross-table constraint to both of its
// tables, so mutating either side revalidates the relationship. It is
// idempotent per relationship: re-declaring the same name is a no-op,
// while a distinct relationship over the same columns gets its own hooks.
func (d *Dispatcher) AttachRelationship(rel schema.Relationship) error {
	binding := rules.Binding{
		Table:           rel.PrimaryTable,
		Column:          rel.PrimaryColumn,
		SecondaryTable:  rel.SecondaryTable,
		SecondaryColumn: rel.SecondaryColumn,
	}

	var primary, secondary rules.Validator
	switch rel.Kind {
	case schema.KindContainment:
		binding.Class = omtg.ClassContainment
		v, ok := d.registry.Lookup(omtg.ClassContainment)
		if !ok {
			return fmt.Errorf("no validator registered for containment")
		}
		primary, secondary = v, v
	case schema.KindArcNode:
		binding.Class = omtg.ClassArcNodeNetwork
		v, ok := d.registry.Lookup(omtg.ClassArcNodeNetwork)
		if !ok {
			return fmt.Errorf("no validator registered for arc-node networks")
		}
		// The node side must accept a node inserted ahead of its arcs,
		// so it checks endpoint coincidence only
		primary, secondary = v, rules.ValidateArcEndpoints
	default:
		return fmt.Errorf("unknown relationship kind %q", rel.Kind)
	}

	d.ensureHook(attachKey{table: rel.PrimaryTable, class: binding.Class, column: rel.PrimaryColumn, rel: rel.Name},
		rel.PrimaryTable, binding, primary)
	d.ensureHook(attachKey{table: rel.SecondaryTable, class: binding.Class, column: rel.SecondaryColumn, rel: rel.Name},
		rel.SecondaryTable, binding, secondary)
	return nil
}

func (d *Dispatcher) ensureHook(key attachKey, table string, binding rules.Binding, validator rules.Validator) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id, exists := d.attached[key]; exists {
		return id, true
	}

	id := uuid.NewString()
	d.attached[key] = id
	d.registerStatementHook(table, id, &hook{id: id, binding: binding, validate: validator})

	d.log.WithFields(logrus.Fields{
		"table":  table,
		"column": key.column,
		"class":  key.class.String(),
		"hook":   id,
	}).Debug("validator attached")
	return id, true
}

// registerStatementHook binds a hook to a table's statement-completion
// event. Caller holds d.mu.
func (d *Dispatcher) registerStatementHook(table, hookID string, h *hook) {
	d.hooks[table] = append(d.hooks[table], h)
}

// StatementCompleted runs every validator attached to the affected table
// against the statement's isolated view. It fires once per statement, not
// per row. The first violation aborts with a *rules.ViolationError; a
// predicate failure aborts with the wrapped error; nil means the
// statement may commit.
func (d *Dispatcher) StatementCompleted(view rules.View, table string, kind StatementKind) error {
	d.mu.Lock()
	attached := make([]*hook, len(d.hooks[table]))
	copy(attached, d.hooks[table])
	d.mu.Unlock()

	for _, h := range attached {
		violations, err := h.validate(view, h.binding, d.preds)
		if err != nil {
			return fmt.Errorf("validating %s after %s: %w", table, kind, err)
		}
		if len(violations) > 0 {
			v := violations[0]
			d.log.WithFields(logrus.Fields{
				"table":     table,
				"statement": string(kind),
				"rule":      v.Rule,
			}).Warn("statement aborted: integrity violation")
			return rules.NewViolationError(v)
		}
	}
	return nil
}

// HookCount returns the number of hooks attached to a table
func (d *Dispatcher) HookCount(table string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.hooks[table])
}
