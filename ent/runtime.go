// Code generated by ent, DO NOT EDIT.

package ent

// The schema-stitching logic is generated in github.com/officinaverde/blog-api/ent/runtime/runtime.go
