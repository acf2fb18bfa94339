package sqlite

// Schema DDL. The counters row keeps the next user ID so IDs are never
// reused after a delete, even though INTEGER PRIMARY KEY alone would
// recycle the highest rowid.
const (
	createUsers = `CREATE TABLE users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL
);`

	createCounters = `CREATE TABLE counters (
    name TEXT PRIMARY KEY,
    next_id INTEGER NOT NULL
);`

	initUserCounter = `INSERT INTO counters (name, next_id) VALUES ('users', 1);`
)

// schemaStatements lists DDL in execution order.
var schemaStatements = []string{
	createUsers,
	createCounters,
	initUserCounter,
}
