package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"geodb/database"
	"geodb/executor"
	"geodb/parser"
	"geodb/rules"
)

// QueryAPI exposes the SQL surface of the database over HTTP.
type QueryAPI struct {
	db   *database.Database
	exec *executor.Executor
	p    *parser.Parser
	log  *logrus.Logger
}

func New(db *database.Database, logger *logrus.Logger) *QueryAPI {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &QueryAPI{
		db:   db,
		exec: executor.New(db),
		p:    parser.New(),
		log:  logger,
	}
}

type queryRequest struct {
	SQL string `json:"sql"`
}

type queryResponse struct {
	Result string `json:"result"`
}

type violationResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

// handleQuery executes a single SQL statement from the request body.
// Integrity violations map to 409 Conflict so clients can tell a rejected
// statement apart from a malformed one.
func (api *QueryAPI) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.SQL == "" {
		http.Error(w, "Missing 'sql' field", http.StatusBadRequest)
		return
	}

	stmt, err := api.p.Parse(req.SQL)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := api.exec.Execute(stmt)
	if err != nil {
		var verr *rules.ViolationError
		if errors.As(err, &verr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(violationResponse{
				Error:  verr.Error(),
				Code:   verr.Code,
				Rule:   verr.Rule,
				Detail: verr.Detail,
			})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(queryResponse{Result: result})
}

func (api *QueryAPI) handleTables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(api.db.Tables())
}

func (api *QueryAPI) handleRelationships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(api.db.Relationships())
}

// Routes returns the API's route table.
func (api *QueryAPI) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/query", api.handleQuery)
	mux.HandleFunc("/tables", api.handleTables)
	mux.HandleFunc("/relationships", api.handleRelationships)
	return mux
}

// RunServer starts the HTTP server with the query API endpoints and blocks
// until the listener fails.
func RunServer(db *database.Database, addr string, logger *logrus.Logger) error {
	api := New(db, logger)

	api.log.WithField("addr", addr).Info("query API listening")
	if err := http.ListenAndServe(addr, api.Routes()); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}

	return nil
}
