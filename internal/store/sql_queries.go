package store

const (
	createUser = `
		INSERT INTO users (
			user_id,
			name,
			email,
			password,
			role,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, name, email, password, role, created_at;`

	findUserByCredentials = `
		SELECT
			user_id,
			name,
			email,
			password,
			role,
			created_at
		FROM users
		WHERE email = $1 AND password = $2;`

	countUsersByEmail = `
		SELECT COUNT(*) FROM users WHERE email = $1;`

	countUsers = `
		SELECT COUNT(*) FROM users;`

	saveSession = `
		INSERT INTO current_session (
			slot, user_id, name, email, password, role, created_at
		) VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (slot) DO UPDATE SET
			user_id    = excluded.user_id,
			name       = excluded.name,
			email      = excluded.email,
			password   = excluded.password,
			role       = excluded.role,
			created_at = excluded.created_at;`

	getSession = `
		SELECT user_id, name, email, password, role, created_at
		FROM current_session
		WHERE slot = 1;`

	deleteSession = `
		DELETE FROM current_session WHERE slot = 1;`

	savePrediction = `
		INSERT INTO last_prediction (
			slot, risk_level, score, timestamp, user_data
		) VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (slot) DO UPDATE SET
			risk_level = excluded.risk_level,
			score      = excluded.score,
			timestamp  = excluded.timestamp,
			user_data  = excluded.user_data;`

	getPrediction = `
		SELECT risk_level, score, timestamp, user_data
		FROM last_prediction
		WHERE slot = 1;`
)
