package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"geodb/cmd/web"
	"geodb/database"
	"geodb/executor"
	"geodb/parser"
)

var (
	dataDir string
	verbose bool
	listen  string
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func openDatabase() (*database.Database, error) {
	return database.New(dataDir, newLogger())
}

func runStatement(exec *executor.Executor, p *parser.Parser, sql string) {
	stmt, err := p.Parse(sql)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return
	}
	result, err := exec.Execute(stmt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Println(result)
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive SQL shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			exec := executor.New(db)
			p := parser.New()

			fmt.Println("geodb shell - type 'exit' to quit")
			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for {
				fmt.Print("geodb> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
					break
				}
				runStatement(exec, p, line)
			}
			return scanner.Err()
		},
	}
}

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <sql>",
		Short: "Execute a single SQL statement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			exec := executor.New(db)
			p := parser.New()

			stmt, err := p.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			result, err := exec.Execute(stmt)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP query API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			logger.SetLevel(logrus.InfoLevel)
			db, err := database.New(dataDir, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			return web.RunServer(db, listen, logger)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8080", "address for the HTTP server")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "geodb",
		Short: "A spatial database with topological integrity constraints",
		Long: "geodb is a small relational database whose geometry columns carry\n" +
			"OMT-G class domains. Declaring a class attaches topological integrity\n" +
			"constraints that every INSERT, UPDATE and DELETE must satisfy.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "directory for the event log and catalog")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newShellCmd())
	root.AddCommand(newExecCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
