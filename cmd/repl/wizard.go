package main

import (
	"fmt"
	"net"
	"net/url"
	"os/user"

	"github.com/ergochat/readline"
	"github.com/go-sql-driver/mysql"
)

// wizardField is one value the connection wizard asks for.
type wizardField struct {
	key   string
	label string
	def   func(answers map[string]string) string // nil means no default
}

func fixed(s string) func(map[string]string) string {
	return func(map[string]string) string { return s }
}

// connectionWizard asks for the fields of one engine and assembles a DSN.
type connectionWizard struct {
	title  string
	fields []wizardField
	dsn    func(answers map[string]string) string
}

var wizards = map[string]connectionWizard{
	"sqlite": {
		title:  "SQLite",
		fields: []wizardField{{key: "path", label: "Database path", def: fixed("proplogic.db")}},
		dsn:    func(a map[string]string) string { return a["path"] },
	},
	"postgres": {
		title: "PostgreSQL",
		fields: []wizardField{
			{key: "user", label: "User", def: func(map[string]string) string { return currentUser() }},
			{key: "password", label: "Password"},
			{key: "host", label: "Host", def: fixed("localhost")},
			{key: "port", label: "Port", def: fixed("5432")},
			{key: "database", label: "Database", def: func(a map[string]string) string { return a["user"] }},
			{key: "sslmode", label: "SSL mode (disable/require/verify-full)", def: fixed("disable")},
		},
		dsn: postgresDSN,
	},
	"mysql": {
		title: "MySQL",
		fields: []wizardField{
			{key: "user", label: "User", def: fixed("root")},
			{key: "password", label: "Password"},
			{key: "host", label: "Host", def: fixed("localhost")},
			{key: "port", label: "Port", def: fixed("3306")},
			{key: "database", label: "Database"},
		},
		dsn: mysqlDSN,
	},
}

// run prompts for every field in order. An empty result means the
// answers were not enough to connect.
func (w connectionWizard) run(rl *readline.Instance) string {
	fmt.Printf("[Config] %s connection setup:\n", w.title)
	answers := make(map[string]string, len(w.fields))
	for _, f := range w.fields {
		def := ""
		if f.def != nil {
			def = f.def(answers)
		}
		answers[f.key] = prompt(rl, f.label, def)
	}
	return w.dsn(answers)
}

func postgresDSN(a map[string]string) string {
	info := url.User(a["user"])
	if a["password"] != "" {
		info = url.UserPassword(a["user"], a["password"])
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     info,
		Host:     net.JoinHostPort(a["host"], a["port"]),
		Path:     "/" + a["database"],
		RawQuery: "sslmode=" + a["sslmode"],
	}
	return u.String()
}

// mysqlDSN returns user:pass@tcp(host:port)/db?parseTime=true, or "" when
// no database was named.
func mysqlDSN(a map[string]string) string {
	if a["database"] == "" {
		return ""
	}
	cfg := mysql.NewConfig()
	cfg.User = a["user"]
	cfg.Passwd = a["password"]
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(a["host"], a["port"])
	cfg.DBName = a["database"]
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "postgres"
}
