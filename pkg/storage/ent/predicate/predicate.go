// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContextRelationship is the predicate function for contextrelationship builders.
type ContextRelationship func(*sql.Selector)

// MemoryEntry is the predicate function for memoryentry builders.
type MemoryEntry func(*sql.Selector)

// ModelConfig is the predicate function for modelconfig builders.
type ModelConfig func(*sql.Selector)

// PromptTemplate is the predicate function for prompttemplate builders.
type PromptTemplate func(*sql.Selector)

// PromptUsage is the predicate function for promptusage builders.
type PromptUsage func(*sql.Selector)
