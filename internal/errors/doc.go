// Package apperrors defines the application error taxonomy and exit codes.
// It centralizes the mapping from error conditions to process exit statuses
// so that every entry point reports outcomes consistently.
package apperrors
