/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	ErrDatabaseURLEnvVarNotSet          = errors.New("DATABASE_URL environment variable not set")
	ErrDatabaseNameNotSpecified         = errors.New("database name not specified in connection URL")
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
)
