package store

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createSession = `INSERT INTO sessions (token, user_id, expires_at)
    VALUES ($1, $2, $3);`

	findSession = `SELECT token, user_id, expires_at, created_at
    FROM sessions
    WHERE token = $1;`
)
