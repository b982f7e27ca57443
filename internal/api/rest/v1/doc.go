// Package v1 implements version 1 of the REST API: key pair management and payload
// encryption over gin.
package v1
