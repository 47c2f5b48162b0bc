// Package environment names the deployment environments a binary can run in
// and normalises the short aliases ("prod", "stage", "dev") found in env files.
package environment
