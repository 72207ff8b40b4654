package schema

import _ "embed"

// SQL e' lo schema Postgres di match-svc (idempotente).
//
//go:embed schema.sql
var SQL string
