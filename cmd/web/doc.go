// Package web provides an HTTP front end over the SQL surface.
//
// The package exposes three endpoints:
//   - POST /query: executes a single SQL statement from a JSON body
//     {"sql": "..."} and returns the formatted result
//   - GET /tables: returns the catalog's table schemas as JSON
//   - GET /relationships: returns the declared spatial relationships
//
// Statements rejected by a topological integrity constraint return
// 409 Conflict with the violation's code, rule name and detail, so clients
// can distinguish a constraint rejection from a syntax error (400).
//
// Usage Example:
//
//	db, err := database.New("./data", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := web.RunServer(db, ":8080", nil); err != nil {
//		log.Fatal(err)
//	}
package web
