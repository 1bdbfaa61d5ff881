// ABOUTME: Custom error types for the briefing pipeline
// ABOUTME: Each fatal condition has a distinct type plus a remediation class for API responses

package errors

import (
	"errors"
	"fmt"
)

// Class tells the caller what kind of remediation an error needs
type Class string

// Remediation classes
const (
	// ClassInput means the request itself should be fixed (bad feeds, bad voice)
	ClassInput Class = "input"

	// ClassEnvironment means the host or its configuration should be fixed
	ClassEnvironment Class = "environment"

	// ClassTransient means the condition may clear on retry
	ClassTransient Class = "transient"

	// ClassInternal covers everything else
	ClassInternal Class = "internal"
)

// ValidationError represents a request validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FeedUnreachableError represents a single feed that could not be fetched
// or parsed. It is non-fatal: the pipeline records it and continues.
type FeedUnreachableError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *FeedUnreachableError) Error() string {
	return fmt.Sprintf("feed unreachable: %s: %s", e.URL, e.Reason)
}

// NoArticlesError means every configured feed failed or yielded nothing
type NoArticlesError struct {
	FeedCount int
}

// Error implements the error interface
func (e *NoArticlesError) Error() string {
	return fmt.Sprintf("no articles found across %d configured feeds", e.FeedCount)
}

// ProviderNotConfiguredError means the TTS credential is absent.
// Raised before any network call; never includes the credential itself.
type ProviderNotConfiguredError struct {
	Provider string
}

// Error implements the error interface
func (e *ProviderNotConfiguredError) Error() string {
	return fmt.Sprintf("speech provider %s is not configured: missing API credential", e.Provider)
}

// SynthesisError represents a provider-side synthesis failure
type SynthesisError struct {
	Provider   string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *SynthesisError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("speech synthesis failed (%s, status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("speech synthesis failed (%s): %s", e.Provider, e.Message)
}

// Transient reports whether the provider error looks retryable later
func (e *SynthesisError) Transient() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// AudioDecodeError represents unreadable or corrupt audio input in the
// mixing stage
type AudioDecodeError struct {
	Source string
	Reason string
}

// Error implements the error interface
func (e *AudioDecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s audio: %s", e.Source, e.Reason)
}

// EncoderUnavailableError means the encoding tool is missing on the host
type EncoderUnavailableError struct {
	Binary string
}

// Error implements the error interface
func (e *EncoderUnavailableError) Error() string {
	return fmt.Sprintf("audio encoder unavailable: binary %q not found on host", e.Binary)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsFeedUnreachable checks if an error is a FeedUnreachableError
func IsFeedUnreachable(err error) bool {
	var target *FeedUnreachableError
	return errors.As(err, &target)
}

// IsNoArticles checks if an error is a NoArticlesError
func IsNoArticles(err error) bool {
	var target *NoArticlesError
	return errors.As(err, &target)
}

// IsProviderNotConfigured checks if an error is a ProviderNotConfiguredError
func IsProviderNotConfigured(err error) bool {
	var target *ProviderNotConfiguredError
	return errors.As(err, &target)
}

// IsSynthesis checks if an error is a SynthesisError
func IsSynthesis(err error) bool {
	var target *SynthesisError
	return errors.As(err, &target)
}

// IsAudioDecode checks if an error is an AudioDecodeError
func IsAudioDecode(err error) bool {
	var target *AudioDecodeError
	return errors.As(err, &target)
}

// IsEncoderUnavailable checks if an error is an EncoderUnavailableError
func IsEncoderUnavailable(err error) bool {
	var target *EncoderUnavailableError
	return errors.As(err, &target)
}

// Classify maps an error to its remediation class
func Classify(err error) Class {
	if err == nil {
		return ClassInternal
	}

	var synthErr *SynthesisError
	switch {
	case IsValidation(err), IsNoArticles(err):
		return ClassInput
	case IsProviderNotConfigured(err), IsEncoderUnavailable(err):
		return ClassEnvironment
	case errors.As(err, &synthErr):
		if synthErr.Transient() {
			return ClassTransient
		}
		return ClassInput
	case IsFeedUnreachable(err):
		return ClassTransient
	default:
		return ClassInternal
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
