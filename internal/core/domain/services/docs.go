// Package services contains domain services: operations that express business
// rules spanning more than one aggregate and therefore do not belong to any
// single aggregate root.
package services
