// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mbuckley/feprep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mbuckley/feprep/ent/advisoryevent"
	"github.com/mbuckley/feprep/ent/cursor"
	"github.com/mbuckley/feprep/ent/examrecord"
	"github.com/mbuckley/feprep/ent/historyentry"
	"github.com/mbuckley/feprep/ent/sequence"
	"github.com/mbuckley/feprep/ent/setting"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdvisoryEvent is the client for interacting with the AdvisoryEvent builders.
	AdvisoryEvent *AdvisoryEventClient
	// Cursor is the client for interacting with the Cursor builders.
	Cursor *CursorClient
	// ExamRecord is the client for interacting with the ExamRecord builders.
	ExamRecord *ExamRecordClient
	// HistoryEntry is the client for interacting with the HistoryEntry builders.
	HistoryEntry *HistoryEntryClient
	// Sequence is the client for interacting with the Sequence builders.
	Sequence *SequenceClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdvisoryEvent = NewAdvisoryEventClient(c.config)
	c.Cursor = NewCursorClient(c.config)
	c.ExamRecord = NewExamRecordClient(c.config)
	c.HistoryEntry = NewHistoryEntryClient(c.config)
	c.Sequence = NewSequenceClient(c.config)
	c.Setting = NewSettingClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		AdvisoryEvent: NewAdvisoryEventClient(cfg),
		Cursor:        NewCursorClient(cfg),
		ExamRecord:    NewExamRecordClient(cfg),
		HistoryEntry:  NewHistoryEntryClient(cfg),
		Sequence:      NewSequenceClient(cfg),
		Setting:       NewSettingClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		AdvisoryEvent: NewAdvisoryEventClient(cfg),
		Cursor:        NewCursorClient(cfg),
		ExamRecord:    NewExamRecordClient(cfg),
		HistoryEntry:  NewHistoryEntryClient(cfg),
		Sequence:      NewSequenceClient(cfg),
		Setting:       NewSettingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdvisoryEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AdvisoryEvent, c.Cursor, c.ExamRecord, c.HistoryEntry, c.Sequence, c.Setting,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdvisoryEvent, c.Cursor, c.ExamRecord, c.HistoryEntry, c.Sequence, c.Setting,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdvisoryEventMutation:
		return c.AdvisoryEvent.mutate(ctx, m)
	case *CursorMutation:
		return c.Cursor.mutate(ctx, m)
	case *ExamRecordMutation:
		return c.ExamRecord.mutate(ctx, m)
	case *HistoryEntryMutation:
		return c.HistoryEntry.mutate(ctx, m)
	case *SequenceMutation:
		return c.Sequence.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdvisoryEventClient is a client for the AdvisoryEvent schema.
type AdvisoryEventClient struct {
	config
}

// NewAdvisoryEventClient returns a client for the AdvisoryEvent from the given config.
func NewAdvisoryEventClient(c config) *AdvisoryEventClient {
	return &AdvisoryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `advisoryevent.Hooks(f(g(h())))`.
func (c *AdvisoryEventClient) Use(hooks ...Hook) {
	c.hooks.AdvisoryEvent = append(c.hooks.AdvisoryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `advisoryevent.Intercept(f(g(h())))`.
func (c *AdvisoryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdvisoryEvent = append(c.inters.AdvisoryEvent, interceptors...)
}

// Create returns a builder for creating a AdvisoryEvent entity.
func (c *AdvisoryEventClient) Create() *AdvisoryEventCreate {
	mutation := newAdvisoryEventMutation(c.config, OpCreate)
	return &AdvisoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdvisoryEvent entities.
func (c *AdvisoryEventClient) CreateBulk(builders ...*AdvisoryEventCreate) *AdvisoryEventCreateBulk {
	return &AdvisoryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdvisoryEventClient) MapCreateBulk(slice any, setFunc func(*AdvisoryEventCreate, int)) *AdvisoryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdvisoryEventCreateBulk{err: fmt.Errorf("calling to AdvisoryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdvisoryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdvisoryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdvisoryEvent.
func (c *AdvisoryEventClient) Update() *AdvisoryEventUpdate {
	mutation := newAdvisoryEventMutation(c.config, OpUpdate)
	return &AdvisoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdvisoryEventClient) UpdateOne(_m *AdvisoryEvent) *AdvisoryEventUpdateOne {
	mutation := newAdvisoryEventMutation(c.config, OpUpdateOne, withAdvisoryEvent(_m))
	return &AdvisoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdvisoryEventClient) UpdateOneID(id int) *AdvisoryEventUpdateOne {
	mutation := newAdvisoryEventMutation(c.config, OpUpdateOne, withAdvisoryEventID(id))
	return &AdvisoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdvisoryEvent.
func (c *AdvisoryEventClient) Delete() *AdvisoryEventDelete {
	mutation := newAdvisoryEventMutation(c.config, OpDelete)
	return &AdvisoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdvisoryEventClient) DeleteOne(_m *AdvisoryEvent) *AdvisoryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdvisoryEventClient) DeleteOneID(id int) *AdvisoryEventDeleteOne {
	builder := c.Delete().Where(advisoryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdvisoryEventDeleteOne{builder}
}

// Query returns a query builder for AdvisoryEvent.
func (c *AdvisoryEventClient) Query() *AdvisoryEventQuery {
	return &AdvisoryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdvisoryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AdvisoryEvent entity by its id.
func (c *AdvisoryEventClient) Get(ctx context.Context, id int) (*AdvisoryEvent, error) {
	return c.Query().Where(advisoryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdvisoryEventClient) GetX(ctx context.Context, id int) *AdvisoryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdvisoryEventClient) Hooks() []Hook {
	return c.hooks.AdvisoryEvent
}

// Interceptors returns the client interceptors.
func (c *AdvisoryEventClient) Interceptors() []Interceptor {
	return c.inters.AdvisoryEvent
}

func (c *AdvisoryEventClient) mutate(ctx context.Context, m *AdvisoryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdvisoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdvisoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdvisoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdvisoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdvisoryEvent mutation op: %q", m.Op())
	}
}

// CursorClient is a client for the Cursor schema.
type CursorClient struct {
	config
}

// NewCursorClient returns a client for the Cursor from the given config.
func NewCursorClient(c config) *CursorClient {
	return &CursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cursor.Hooks(f(g(h())))`.
func (c *CursorClient) Use(hooks ...Hook) {
	c.hooks.Cursor = append(c.hooks.Cursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cursor.Intercept(f(g(h())))`.
func (c *CursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cursor = append(c.inters.Cursor, interceptors...)
}

// Create returns a builder for creating a Cursor entity.
func (c *CursorClient) Create() *CursorCreate {
	mutation := newCursorMutation(c.config, OpCreate)
	return &CursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cursor entities.
func (c *CursorClient) CreateBulk(builders ...*CursorCreate) *CursorCreateBulk {
	return &CursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CursorClient) MapCreateBulk(slice any, setFunc func(*CursorCreate, int)) *CursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CursorCreateBulk{err: fmt.Errorf("calling to CursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cursor.
func (c *CursorClient) Update() *CursorUpdate {
	mutation := newCursorMutation(c.config, OpUpdate)
	return &CursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CursorClient) UpdateOne(_m *Cursor) *CursorUpdateOne {
	mutation := newCursorMutation(c.config, OpUpdateOne, withCursor(_m))
	return &CursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CursorClient) UpdateOneID(id int) *CursorUpdateOne {
	mutation := newCursorMutation(c.config, OpUpdateOne, withCursorID(id))
	return &CursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cursor.
func (c *CursorClient) Delete() *CursorDelete {
	mutation := newCursorMutation(c.config, OpDelete)
	return &CursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CursorClient) DeleteOne(_m *Cursor) *CursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CursorClient) DeleteOneID(id int) *CursorDeleteOne {
	builder := c.Delete().Where(cursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CursorDeleteOne{builder}
}

// Query returns a query builder for Cursor.
func (c *CursorClient) Query() *CursorQuery {
	return &CursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a Cursor entity by its id.
func (c *CursorClient) Get(ctx context.Context, id int) (*Cursor, error) {
	return c.Query().Where(cursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CursorClient) GetX(ctx context.Context, id int) *Cursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CursorClient) Hooks() []Hook {
	return c.hooks.Cursor
}

// Interceptors returns the client interceptors.
func (c *CursorClient) Interceptors() []Interceptor {
	return c.inters.Cursor
}

func (c *CursorClient) mutate(ctx context.Context, m *CursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cursor mutation op: %q", m.Op())
	}
}

// ExamRecordClient is a client for the ExamRecord schema.
type ExamRecordClient struct {
	config
}

// NewExamRecordClient returns a client for the ExamRecord from the given config.
func NewExamRecordClient(c config) *ExamRecordClient {
	return &ExamRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examrecord.Hooks(f(g(h())))`.
func (c *ExamRecordClient) Use(hooks ...Hook) {
	c.hooks.ExamRecord = append(c.hooks.ExamRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examrecord.Intercept(f(g(h())))`.
func (c *ExamRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamRecord = append(c.inters.ExamRecord, interceptors...)
}

// Create returns a builder for creating a ExamRecord entity.
func (c *ExamRecordClient) Create() *ExamRecordCreate {
	mutation := newExamRecordMutation(c.config, OpCreate)
	return &ExamRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamRecord entities.
func (c *ExamRecordClient) CreateBulk(builders ...*ExamRecordCreate) *ExamRecordCreateBulk {
	return &ExamRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamRecordClient) MapCreateBulk(slice any, setFunc func(*ExamRecordCreate, int)) *ExamRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamRecordCreateBulk{err: fmt.Errorf("calling to ExamRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamRecord.
func (c *ExamRecordClient) Update() *ExamRecordUpdate {
	mutation := newExamRecordMutation(c.config, OpUpdate)
	return &ExamRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamRecordClient) UpdateOne(_m *ExamRecord) *ExamRecordUpdateOne {
	mutation := newExamRecordMutation(c.config, OpUpdateOne, withExamRecord(_m))
	return &ExamRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamRecordClient) UpdateOneID(id int) *ExamRecordUpdateOne {
	mutation := newExamRecordMutation(c.config, OpUpdateOne, withExamRecordID(id))
	return &ExamRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamRecord.
func (c *ExamRecordClient) Delete() *ExamRecordDelete {
	mutation := newExamRecordMutation(c.config, OpDelete)
	return &ExamRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamRecordClient) DeleteOne(_m *ExamRecord) *ExamRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamRecordClient) DeleteOneID(id int) *ExamRecordDeleteOne {
	builder := c.Delete().Where(examrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamRecordDeleteOne{builder}
}

// Query returns a query builder for ExamRecord.
func (c *ExamRecordClient) Query() *ExamRecordQuery {
	return &ExamRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamRecord entity by its id.
func (c *ExamRecordClient) Get(ctx context.Context, id int) (*ExamRecord, error) {
	return c.Query().Where(examrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamRecordClient) GetX(ctx context.Context, id int) *ExamRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamRecordClient) Hooks() []Hook {
	return c.hooks.ExamRecord
}

// Interceptors returns the client interceptors.
func (c *ExamRecordClient) Interceptors() []Interceptor {
	return c.inters.ExamRecord
}

func (c *ExamRecordClient) mutate(ctx context.Context, m *ExamRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamRecord mutation op: %q", m.Op())
	}
}

// HistoryEntryClient is a client for the HistoryEntry schema.
type HistoryEntryClient struct {
	config
}

// NewHistoryEntryClient returns a client for the HistoryEntry from the given config.
func NewHistoryEntryClient(c config) *HistoryEntryClient {
	return &HistoryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `historyentry.Hooks(f(g(h())))`.
func (c *HistoryEntryClient) Use(hooks ...Hook) {
	c.hooks.HistoryEntry = append(c.hooks.HistoryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `historyentry.Intercept(f(g(h())))`.
func (c *HistoryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.HistoryEntry = append(c.inters.HistoryEntry, interceptors...)
}

// Create returns a builder for creating a HistoryEntry entity.
func (c *HistoryEntryClient) Create() *HistoryEntryCreate {
	mutation := newHistoryEntryMutation(c.config, OpCreate)
	return &HistoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HistoryEntry entities.
func (c *HistoryEntryClient) CreateBulk(builders ...*HistoryEntryCreate) *HistoryEntryCreateBulk {
	return &HistoryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HistoryEntryClient) MapCreateBulk(slice any, setFunc func(*HistoryEntryCreate, int)) *HistoryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HistoryEntryCreateBulk{err: fmt.Errorf("calling to HistoryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HistoryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HistoryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HistoryEntry.
func (c *HistoryEntryClient) Update() *HistoryEntryUpdate {
	mutation := newHistoryEntryMutation(c.config, OpUpdate)
	return &HistoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HistoryEntryClient) UpdateOne(_m *HistoryEntry) *HistoryEntryUpdateOne {
	mutation := newHistoryEntryMutation(c.config, OpUpdateOne, withHistoryEntry(_m))
	return &HistoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HistoryEntryClient) UpdateOneID(id int) *HistoryEntryUpdateOne {
	mutation := newHistoryEntryMutation(c.config, OpUpdateOne, withHistoryEntryID(id))
	return &HistoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HistoryEntry.
func (c *HistoryEntryClient) Delete() *HistoryEntryDelete {
	mutation := newHistoryEntryMutation(c.config, OpDelete)
	return &HistoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HistoryEntryClient) DeleteOne(_m *HistoryEntry) *HistoryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HistoryEntryClient) DeleteOneID(id int) *HistoryEntryDeleteOne {
	builder := c.Delete().Where(historyentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HistoryEntryDeleteOne{builder}
}

// Query returns a query builder for HistoryEntry.
func (c *HistoryEntryClient) Query() *HistoryEntryQuery {
	return &HistoryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHistoryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a HistoryEntry entity by its id.
func (c *HistoryEntryClient) Get(ctx context.Context, id int) (*HistoryEntry, error) {
	return c.Query().Where(historyentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HistoryEntryClient) GetX(ctx context.Context, id int) *HistoryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HistoryEntryClient) Hooks() []Hook {
	return c.hooks.HistoryEntry
}

// Interceptors returns the client interceptors.
func (c *HistoryEntryClient) Interceptors() []Interceptor {
	return c.inters.HistoryEntry
}

func (c *HistoryEntryClient) mutate(ctx context.Context, m *HistoryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HistoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HistoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HistoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HistoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HistoryEntry mutation op: %q", m.Op())
	}
}

// SequenceClient is a client for the Sequence schema.
type SequenceClient struct {
	config
}

// NewSequenceClient returns a client for the Sequence from the given config.
func NewSequenceClient(c config) *SequenceClient {
	return &SequenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sequence.Hooks(f(g(h())))`.
func (c *SequenceClient) Use(hooks ...Hook) {
	c.hooks.Sequence = append(c.hooks.Sequence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sequence.Intercept(f(g(h())))`.
func (c *SequenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sequence = append(c.inters.Sequence, interceptors...)
}

// Create returns a builder for creating a Sequence entity.
func (c *SequenceClient) Create() *SequenceCreate {
	mutation := newSequenceMutation(c.config, OpCreate)
	return &SequenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sequence entities.
func (c *SequenceClient) CreateBulk(builders ...*SequenceCreate) *SequenceCreateBulk {
	return &SequenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SequenceClient) MapCreateBulk(slice any, setFunc func(*SequenceCreate, int)) *SequenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SequenceCreateBulk{err: fmt.Errorf("calling to SequenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SequenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SequenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sequence.
func (c *SequenceClient) Update() *SequenceUpdate {
	mutation := newSequenceMutation(c.config, OpUpdate)
	return &SequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SequenceClient) UpdateOne(_m *Sequence) *SequenceUpdateOne {
	mutation := newSequenceMutation(c.config, OpUpdateOne, withSequence(_m))
	return &SequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SequenceClient) UpdateOneID(id int) *SequenceUpdateOne {
	mutation := newSequenceMutation(c.config, OpUpdateOne, withSequenceID(id))
	return &SequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sequence.
func (c *SequenceClient) Delete() *SequenceDelete {
	mutation := newSequenceMutation(c.config, OpDelete)
	return &SequenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SequenceClient) DeleteOne(_m *Sequence) *SequenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SequenceClient) DeleteOneID(id int) *SequenceDeleteOne {
	builder := c.Delete().Where(sequence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SequenceDeleteOne{builder}
}

// Query returns a query builder for Sequence.
func (c *SequenceClient) Query() *SequenceQuery {
	return &SequenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSequence},
		inters: c.Interceptors(),
	}
}

// Get returns a Sequence entity by its id.
func (c *SequenceClient) Get(ctx context.Context, id int) (*Sequence, error) {
	return c.Query().Where(sequence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SequenceClient) GetX(ctx context.Context, id int) *Sequence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SequenceClient) Hooks() []Hook {
	return c.hooks.Sequence
}

// Interceptors returns the client interceptors.
func (c *SequenceClient) Interceptors() []Interceptor {
	return c.inters.Sequence
}

func (c *SequenceClient) mutate(ctx context.Context, m *SequenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SequenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SequenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sequence mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdvisoryEvent, Cursor, ExamRecord, HistoryEntry, Sequence, Setting []ent.Hook
	}
	inters struct {
		AdvisoryEvent, Cursor, ExamRecord, HistoryEntry, Sequence,
		Setting []ent.Interceptor
	}
)
