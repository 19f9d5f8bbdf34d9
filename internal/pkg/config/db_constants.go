package config

// PostgresDbType selects the PostgreSQL gorm driver
const PostgresDbType = "postgres"

// SqliteDbType selects the SQLite gorm driver
const SqliteDbType = "sqlite"
