package db

import "fmt"

// Config holds the connection parameters for the Postgres relational store, sourced from the
// 'DB_{HOST,PORT,USER,PASSWORD,DBNAME}' environment variables.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ConnString returns the 'postgres://' connection URI built from the config.
func (c Config) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.DBName,
	)
}
