// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/recallhq/recall/pkg/storage/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
	"github.com/recallhq/recall/pkg/storage/ent/memoryentry"
	"github.com/recallhq/recall/pkg/storage/ent/modelconfig"
	"github.com/recallhq/recall/pkg/storage/ent/prompttemplate"
	"github.com/recallhq/recall/pkg/storage/ent/promptusage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContextRelationship is the client for interacting with the ContextRelationship builders.
	ContextRelationship *ContextRelationshipClient
	// MemoryEntry is the client for interacting with the MemoryEntry builders.
	MemoryEntry *MemoryEntryClient
	// ModelConfig is the client for interacting with the ModelConfig builders.
	ModelConfig *ModelConfigClient
	// PromptTemplate is the client for interacting with the PromptTemplate builders.
	PromptTemplate *PromptTemplateClient
	// PromptUsage is the client for interacting with the PromptUsage builders.
	PromptUsage *PromptUsageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContextRelationship = NewContextRelationshipClient(c.config)
	c.MemoryEntry = NewMemoryEntryClient(c.config)
	c.ModelConfig = NewModelConfigClient(c.config)
	c.PromptTemplate = NewPromptTemplateClient(c.config)
	c.PromptUsage = NewPromptUsageClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		ContextRelationship: NewContextRelationshipClient(cfg),
		MemoryEntry:         NewMemoryEntryClient(cfg),
		ModelConfig:         NewModelConfigClient(cfg),
		PromptTemplate:      NewPromptTemplateClient(cfg),
		PromptUsage:         NewPromptUsageClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		ContextRelationship: NewContextRelationshipClient(cfg),
		MemoryEntry:         NewMemoryEntryClient(cfg),
		ModelConfig:         NewModelConfigClient(cfg),
		PromptTemplate:      NewPromptTemplateClient(cfg),
		PromptUsage:         NewPromptUsageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContextRelationship.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ContextRelationship.Use(hooks...)
	c.MemoryEntry.Use(hooks...)
	c.ModelConfig.Use(hooks...)
	c.PromptTemplate.Use(hooks...)
	c.PromptUsage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ContextRelationship.Intercept(interceptors...)
	c.MemoryEntry.Intercept(interceptors...)
	c.ModelConfig.Intercept(interceptors...)
	c.PromptTemplate.Intercept(interceptors...)
	c.PromptUsage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContextRelationshipMutation:
		return c.ContextRelationship.mutate(ctx, m)
	case *MemoryEntryMutation:
		return c.MemoryEntry.mutate(ctx, m)
	case *ModelConfigMutation:
		return c.ModelConfig.mutate(ctx, m)
	case *PromptTemplateMutation:
		return c.PromptTemplate.mutate(ctx, m)
	case *PromptUsageMutation:
		return c.PromptUsage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContextRelationshipClient is a client for the ContextRelationship schema.
type ContextRelationshipClient struct {
	config
}

// NewContextRelationshipClient returns a client for the ContextRelationship from the given config.
func NewContextRelationshipClient(c config) *ContextRelationshipClient {
	return &ContextRelationshipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextrelationship.Hooks(f(g(h())))`.
func (c *ContextRelationshipClient) Use(hooks ...Hook) {
	c.hooks.ContextRelationship = append(c.hooks.ContextRelationship, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextrelationship.Intercept(f(g(h())))`.
func (c *ContextRelationshipClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextRelationship = append(c.inters.ContextRelationship, interceptors...)
}

// Create returns a builder for creating a ContextRelationship entity.
func (c *ContextRelationshipClient) Create() *ContextRelationshipCreate {
	mutation := newContextRelationshipMutation(c.config, OpCreate)
	return &ContextRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextRelationship entities.
func (c *ContextRelationshipClient) CreateBulk(builders ...*ContextRelationshipCreate) *ContextRelationshipCreateBulk {
	return &ContextRelationshipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextRelationshipClient) MapCreateBulk(slice any, setFunc func(*ContextRelationshipCreate, int)) *ContextRelationshipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextRelationshipCreateBulk{err: fmt.Errorf("calling to ContextRelationshipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextRelationshipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextRelationshipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextRelationship.
func (c *ContextRelationshipClient) Update() *ContextRelationshipUpdate {
	mutation := newContextRelationshipMutation(c.config, OpUpdate)
	return &ContextRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextRelationshipClient) UpdateOne(_m *ContextRelationship) *ContextRelationshipUpdateOne {
	mutation := newContextRelationshipMutation(c.config, OpUpdateOne, withContextRelationship(_m))
	return &ContextRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextRelationshipClient) UpdateOneID(id string) *ContextRelationshipUpdateOne {
	mutation := newContextRelationshipMutation(c.config, OpUpdateOne, withContextRelationshipID(id))
	return &ContextRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextRelationship.
func (c *ContextRelationshipClient) Delete() *ContextRelationshipDelete {
	mutation := newContextRelationshipMutation(c.config, OpDelete)
	return &ContextRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextRelationshipClient) DeleteOne(_m *ContextRelationship) *ContextRelationshipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextRelationshipClient) DeleteOneID(id string) *ContextRelationshipDeleteOne {
	builder := c.Delete().Where(contextrelationship.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextRelationshipDeleteOne{builder}
}

// Query returns a query builder for ContextRelationship.
func (c *ContextRelationshipClient) Query() *ContextRelationshipQuery {
	return &ContextRelationshipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextRelationship},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextRelationship entity by its id.
func (c *ContextRelationshipClient) Get(ctx context.Context, id string) (*ContextRelationship, error) {
	return c.Query().Where(contextrelationship.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextRelationshipClient) GetX(ctx context.Context, id string) *ContextRelationship {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContextRelationshipClient) Hooks() []Hook {
	return c.hooks.ContextRelationship
}

// Interceptors returns the client interceptors.
func (c *ContextRelationshipClient) Interceptors() []Interceptor {
	return c.inters.ContextRelationship
}

func (c *ContextRelationshipClient) mutate(ctx context.Context, m *ContextRelationshipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextRelationship mutation op: %q", m.Op())
	}
}

// MemoryEntryClient is a client for the MemoryEntry schema.
type MemoryEntryClient struct {
	config
}

// NewMemoryEntryClient returns a client for the MemoryEntry from the given config.
func NewMemoryEntryClient(c config) *MemoryEntryClient {
	return &MemoryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryentry.Hooks(f(g(h())))`.
func (c *MemoryEntryClient) Use(hooks ...Hook) {
	c.hooks.MemoryEntry = append(c.hooks.MemoryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryentry.Intercept(f(g(h())))`.
func (c *MemoryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryEntry = append(c.inters.MemoryEntry, interceptors...)
}

// Create returns a builder for creating a MemoryEntry entity.
func (c *MemoryEntryClient) Create() *MemoryEntryCreate {
	mutation := newMemoryEntryMutation(c.config, OpCreate)
	return &MemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryEntry entities.
func (c *MemoryEntryClient) CreateBulk(builders ...*MemoryEntryCreate) *MemoryEntryCreateBulk {
	return &MemoryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryEntryClient) MapCreateBulk(slice any, setFunc func(*MemoryEntryCreate, int)) *MemoryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryEntryCreateBulk{err: fmt.Errorf("calling to MemoryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryEntry.
func (c *MemoryEntryClient) Update() *MemoryEntryUpdate {
	mutation := newMemoryEntryMutation(c.config, OpUpdate)
	return &MemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryEntryClient) UpdateOne(_m *MemoryEntry) *MemoryEntryUpdateOne {
	mutation := newMemoryEntryMutation(c.config, OpUpdateOne, withMemoryEntry(_m))
	return &MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryEntryClient) UpdateOneID(id string) *MemoryEntryUpdateOne {
	mutation := newMemoryEntryMutation(c.config, OpUpdateOne, withMemoryEntryID(id))
	return &MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryEntry.
func (c *MemoryEntryClient) Delete() *MemoryEntryDelete {
	mutation := newMemoryEntryMutation(c.config, OpDelete)
	return &MemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryEntryClient) DeleteOne(_m *MemoryEntry) *MemoryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryEntryClient) DeleteOneID(id string) *MemoryEntryDeleteOne {
	builder := c.Delete().Where(memoryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryEntryDeleteOne{builder}
}

// Query returns a query builder for MemoryEntry.
func (c *MemoryEntryClient) Query() *MemoryEntryQuery {
	return &MemoryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryEntry entity by its id.
func (c *MemoryEntryClient) Get(ctx context.Context, id string) (*MemoryEntry, error) {
	return c.Query().Where(memoryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryEntryClient) GetX(ctx context.Context, id string) *MemoryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryEntryClient) Hooks() []Hook {
	return c.hooks.MemoryEntry
}

// Interceptors returns the client interceptors.
func (c *MemoryEntryClient) Interceptors() []Interceptor {
	return c.inters.MemoryEntry
}

func (c *MemoryEntryClient) mutate(ctx context.Context, m *MemoryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryEntry mutation op: %q", m.Op())
	}
}

// ModelConfigClient is a client for the ModelConfig schema.
type ModelConfigClient struct {
	config
}

// NewModelConfigClient returns a client for the ModelConfig from the given config.
func NewModelConfigClient(c config) *ModelConfigClient {
	return &ModelConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfig.Hooks(f(g(h())))`.
func (c *ModelConfigClient) Use(hooks ...Hook) {
	c.hooks.ModelConfig = append(c.hooks.ModelConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfig.Intercept(f(g(h())))`.
func (c *ModelConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfig = append(c.inters.ModelConfig, interceptors...)
}

// Create returns a builder for creating a ModelConfig entity.
func (c *ModelConfigClient) Create() *ModelConfigCreate {
	mutation := newModelConfigMutation(c.config, OpCreate)
	return &ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfig entities.
func (c *ModelConfigClient) CreateBulk(builders ...*ModelConfigCreate) *ModelConfigCreateBulk {
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigClient) MapCreateBulk(slice any, setFunc func(*ModelConfigCreate, int)) *ModelConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigCreateBulk{err: fmt.Errorf("calling to ModelConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfig.
func (c *ModelConfigClient) Update() *ModelConfigUpdate {
	mutation := newModelConfigMutation(c.config, OpUpdate)
	return &ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigClient) UpdateOne(_m *ModelConfig) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfig(_m))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigClient) UpdateOneID(id string) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfigID(id))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfig.
func (c *ModelConfigClient) Delete() *ModelConfigDelete {
	mutation := newModelConfigMutation(c.config, OpDelete)
	return &ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigClient) DeleteOne(_m *ModelConfig) *ModelConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigClient) DeleteOneID(id string) *ModelConfigDeleteOne {
	builder := c.Delete().Where(modelconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigDeleteOne{builder}
}

// Query returns a query builder for ModelConfig.
func (c *ModelConfigClient) Query() *ModelConfigQuery {
	return &ModelConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfig entity by its id.
func (c *ModelConfigClient) Get(ctx context.Context, id string) (*ModelConfig, error) {
	return c.Query().Where(modelconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigClient) GetX(ctx context.Context, id string) *ModelConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelConfigClient) Hooks() []Hook {
	return c.hooks.ModelConfig
}

// Interceptors returns the client interceptors.
func (c *ModelConfigClient) Interceptors() []Interceptor {
	return c.inters.ModelConfig
}

func (c *ModelConfigClient) mutate(ctx context.Context, m *ModelConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfig mutation op: %q", m.Op())
	}
}

// PromptTemplateClient is a client for the PromptTemplate schema.
type PromptTemplateClient struct {
	config
}

// NewPromptTemplateClient returns a client for the PromptTemplate from the given config.
func NewPromptTemplateClient(c config) *PromptTemplateClient {
	return &PromptTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompttemplate.Hooks(f(g(h())))`.
func (c *PromptTemplateClient) Use(hooks ...Hook) {
	c.hooks.PromptTemplate = append(c.hooks.PromptTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompttemplate.Intercept(f(g(h())))`.
func (c *PromptTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptTemplate = append(c.inters.PromptTemplate, interceptors...)
}

// Create returns a builder for creating a PromptTemplate entity.
func (c *PromptTemplateClient) Create() *PromptTemplateCreate {
	mutation := newPromptTemplateMutation(c.config, OpCreate)
	return &PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptTemplate entities.
func (c *PromptTemplateClient) CreateBulk(builders ...*PromptTemplateCreate) *PromptTemplateCreateBulk {
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptTemplateClient) MapCreateBulk(slice any, setFunc func(*PromptTemplateCreate, int)) *PromptTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptTemplateCreateBulk{err: fmt.Errorf("calling to PromptTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptTemplate.
func (c *PromptTemplateClient) Update() *PromptTemplateUpdate {
	mutation := newPromptTemplateMutation(c.config, OpUpdate)
	return &PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptTemplateClient) UpdateOne(_m *PromptTemplate) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplate(_m))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptTemplateClient) UpdateOneID(id string) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplateID(id))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptTemplate.
func (c *PromptTemplateClient) Delete() *PromptTemplateDelete {
	mutation := newPromptTemplateMutation(c.config, OpDelete)
	return &PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptTemplateClient) DeleteOne(_m *PromptTemplate) *PromptTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptTemplateClient) DeleteOneID(id string) *PromptTemplateDeleteOne {
	builder := c.Delete().Where(prompttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptTemplateDeleteOne{builder}
}

// Query returns a query builder for PromptTemplate.
func (c *PromptTemplateClient) Query() *PromptTemplateQuery {
	return &PromptTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptTemplate entity by its id.
func (c *PromptTemplateClient) Get(ctx context.Context, id string) (*PromptTemplate, error) {
	return c.Query().Where(prompttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptTemplateClient) GetX(ctx context.Context, id string) *PromptTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptTemplateClient) Hooks() []Hook {
	return c.hooks.PromptTemplate
}

// Interceptors returns the client interceptors.
func (c *PromptTemplateClient) Interceptors() []Interceptor {
	return c.inters.PromptTemplate
}

func (c *PromptTemplateClient) mutate(ctx context.Context, m *PromptTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptTemplate mutation op: %q", m.Op())
	}
}

// PromptUsageClient is a client for the PromptUsage schema.
type PromptUsageClient struct {
	config
}

// NewPromptUsageClient returns a client for the PromptUsage from the given config.
func NewPromptUsageClient(c config) *PromptUsageClient {
	return &PromptUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptusage.Hooks(f(g(h())))`.
func (c *PromptUsageClient) Use(hooks ...Hook) {
	c.hooks.PromptUsage = append(c.hooks.PromptUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptusage.Intercept(f(g(h())))`.
func (c *PromptUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptUsage = append(c.inters.PromptUsage, interceptors...)
}

// Create returns a builder for creating a PromptUsage entity.
func (c *PromptUsageClient) Create() *PromptUsageCreate {
	mutation := newPromptUsageMutation(c.config, OpCreate)
	return &PromptUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptUsage entities.
func (c *PromptUsageClient) CreateBulk(builders ...*PromptUsageCreate) *PromptUsageCreateBulk {
	return &PromptUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptUsageClient) MapCreateBulk(slice any, setFunc func(*PromptUsageCreate, int)) *PromptUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptUsageCreateBulk{err: fmt.Errorf("calling to PromptUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptUsage.
func (c *PromptUsageClient) Update() *PromptUsageUpdate {
	mutation := newPromptUsageMutation(c.config, OpUpdate)
	return &PromptUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptUsageClient) UpdateOne(_m *PromptUsage) *PromptUsageUpdateOne {
	mutation := newPromptUsageMutation(c.config, OpUpdateOne, withPromptUsage(_m))
	return &PromptUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptUsageClient) UpdateOneID(id string) *PromptUsageUpdateOne {
	mutation := newPromptUsageMutation(c.config, OpUpdateOne, withPromptUsageID(id))
	return &PromptUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptUsage.
func (c *PromptUsageClient) Delete() *PromptUsageDelete {
	mutation := newPromptUsageMutation(c.config, OpDelete)
	return &PromptUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptUsageClient) DeleteOne(_m *PromptUsage) *PromptUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptUsageClient) DeleteOneID(id string) *PromptUsageDeleteOne {
	builder := c.Delete().Where(promptusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptUsageDeleteOne{builder}
}

// Query returns a query builder for PromptUsage.
func (c *PromptUsageClient) Query() *PromptUsageQuery {
	return &PromptUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptUsage entity by its id.
func (c *PromptUsageClient) Get(ctx context.Context, id string) (*PromptUsage, error) {
	return c.Query().Where(promptusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptUsageClient) GetX(ctx context.Context, id string) *PromptUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptUsageClient) Hooks() []Hook {
	return c.hooks.PromptUsage
}

// Interceptors returns the client interceptors.
func (c *PromptUsageClient) Interceptors() []Interceptor {
	return c.inters.PromptUsage
}

func (c *PromptUsageClient) mutate(ctx context.Context, m *PromptUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptUsage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContextRelationship, MemoryEntry, ModelConfig, PromptTemplate,
		PromptUsage []ent.Hook
	}
	inters struct {
		ContextRelationship, MemoryEntry, ModelConfig, PromptTemplate,
		PromptUsage []ent.Interceptor
	}
)
