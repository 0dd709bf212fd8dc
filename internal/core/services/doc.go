// Package services implements the core use cases.
//
// Services orchestrate domain logic using driven ports. They implement
// driving port interfaces and contain no infrastructure code.
package services
