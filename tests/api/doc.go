// Package api contains tests that run against a real backend server.
//
// These tests require the backend server to be running before execution.
// They walk the public and admin endpoints end to end.
//
// Usage:
//
//	# Start the backend server first
//	go run cmd/server/main.go
//
//	# Then run the API tests
//	go test -tags=api ./tests/api/... -v
//
// Environment Variables:
//
//	API_BASE_URL   - Base URL of the API server (default: http://localhost:8080)
//	ADMIN_USERNAME - Admin username for token issuance (default: admin)
//	ADMIN_PASSWORD - Admin password for token issuance (default: test-password)
package api
