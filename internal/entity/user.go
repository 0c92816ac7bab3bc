package entity

type User struct {
	ID           ID     `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

/*
Schema (see migrations.AutoMigrate):

CREATE TABLE users (
	id VARCHAR(36) PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at BIGINT NOT NULL
);
*/
