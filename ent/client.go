// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"face-gateway/ent/migrate"

	"face-gateway/ent/biometricreading"
	"face-gateway/ent/devicecommandlog"
	"face-gateway/ent/person"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BiometricReading is the client for interacting with the BiometricReading builders.
	BiometricReading *BiometricReadingClient
	// DeviceCommandLog is the client for interacting with the DeviceCommandLog builders.
	DeviceCommandLog *DeviceCommandLogClient
	// Person is the client for interacting with the Person builders.
	Person *PersonClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BiometricReading = NewBiometricReadingClient(c.config)
	c.DeviceCommandLog = NewDeviceCommandLogClient(c.config)
	c.Person = NewPersonClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		BiometricReading: NewBiometricReadingClient(cfg),
		DeviceCommandLog: NewDeviceCommandLogClient(cfg),
		Person:           NewPersonClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		BiometricReading: NewBiometricReadingClient(cfg),
		DeviceCommandLog: NewDeviceCommandLogClient(cfg),
		Person:           NewPersonClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BiometricReading.
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
	c.BiometricReading.Use(hooks...)
	c.DeviceCommandLog.Use(hooks...)
	c.Person.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BiometricReading.Intercept(interceptors...)
	c.DeviceCommandLog.Intercept(interceptors...)
	c.Person.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BiometricReadingMutation:
		return c.BiometricReading.mutate(ctx, m)
	case *DeviceCommandLogMutation:
		return c.DeviceCommandLog.mutate(ctx, m)
	case *PersonMutation:
		return c.Person.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BiometricReadingClient is a client for the BiometricReading schema.
type BiometricReadingClient struct {
	config
}

// NewBiometricReadingClient returns a client for the BiometricReading from the given config.
func NewBiometricReadingClient(c config) *BiometricReadingClient {
	return &BiometricReadingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `biometricreading.Hooks(f(g(h())))`.
func (c *BiometricReadingClient) Use(hooks ...Hook) {
	c.hooks.BiometricReading = append(c.hooks.BiometricReading, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `biometricreading.Intercept(f(g(h())))`.
func (c *BiometricReadingClient) Intercept(interceptors ...Interceptor) {
	c.inters.BiometricReading = append(c.inters.BiometricReading, interceptors...)
}

// Create returns a builder for creating a BiometricReading entity.
func (c *BiometricReadingClient) Create() *BiometricReadingCreate {
	mutation := newBiometricReadingMutation(c.config, OpCreate)
	return &BiometricReadingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BiometricReading entities.
func (c *BiometricReadingClient) CreateBulk(builders ...*BiometricReadingCreate) *BiometricReadingCreateBulk {
	return &BiometricReadingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BiometricReadingClient) MapCreateBulk(slice any, setFunc func(*BiometricReadingCreate, int)) *BiometricReadingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BiometricReadingCreateBulk{err: fmt.Errorf("calling to BiometricReadingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BiometricReadingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BiometricReadingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BiometricReading.
func (c *BiometricReadingClient) Update() *BiometricReadingUpdate {
	mutation := newBiometricReadingMutation(c.config, OpUpdate)
	return &BiometricReadingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BiometricReadingClient) UpdateOne(_m *BiometricReading) *BiometricReadingUpdateOne {
	mutation := newBiometricReadingMutation(c.config, OpUpdateOne, withBiometricReading(_m))
	return &BiometricReadingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BiometricReadingClient) UpdateOneID(id int) *BiometricReadingUpdateOne {
	mutation := newBiometricReadingMutation(c.config, OpUpdateOne, withBiometricReadingID(id))
	return &BiometricReadingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BiometricReading.
func (c *BiometricReadingClient) Delete() *BiometricReadingDelete {
	mutation := newBiometricReadingMutation(c.config, OpDelete)
	return &BiometricReadingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BiometricReadingClient) DeleteOne(_m *BiometricReading) *BiometricReadingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BiometricReadingClient) DeleteOneID(id int) *BiometricReadingDeleteOne {
	builder := c.Delete().Where(biometricreading.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BiometricReadingDeleteOne{builder}
}

// Query returns a query builder for BiometricReading.
func (c *BiometricReadingClient) Query() *BiometricReadingQuery {
	return &BiometricReadingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBiometricReading},
		inters: c.Interceptors(),
	}
}

// Get returns a BiometricReading entity by its id.
func (c *BiometricReadingClient) Get(ctx context.Context, id int) (*BiometricReading, error) {
	return c.Query().Where(biometricreading.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BiometricReadingClient) GetX(ctx context.Context, id int) *BiometricReading {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubject queries the subject edge of a BiometricReading.
func (c *BiometricReadingClient) QuerySubject(_m *BiometricReading) *PersonQuery {
	query := (&PersonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(biometricreading.Table, biometricreading.FieldID, id),
			sqlgraph.To(person.Table, person.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, biometricreading.SubjectTable, biometricreading.SubjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BiometricReadingClient) Hooks() []Hook {
	return c.hooks.BiometricReading
}

// Interceptors returns the client interceptors.
func (c *BiometricReadingClient) Interceptors() []Interceptor {
	return c.inters.BiometricReading
}

func (c *BiometricReadingClient) mutate(ctx context.Context, m *BiometricReadingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BiometricReadingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BiometricReadingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BiometricReadingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BiometricReadingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BiometricReading mutation op: %q", m.Op())
	}
}

// DeviceCommandLogClient is a client for the DeviceCommandLog schema.
type DeviceCommandLogClient struct {
	config
}

// NewDeviceCommandLogClient returns a client for the DeviceCommandLog from the given config.
func NewDeviceCommandLogClient(c config) *DeviceCommandLogClient {
	return &DeviceCommandLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `devicecommandlog.Hooks(f(g(h())))`.
func (c *DeviceCommandLogClient) Use(hooks ...Hook) {
	c.hooks.DeviceCommandLog = append(c.hooks.DeviceCommandLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `devicecommandlog.Intercept(f(g(h())))`.
func (c *DeviceCommandLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeviceCommandLog = append(c.inters.DeviceCommandLog, interceptors...)
}

// Create returns a builder for creating a DeviceCommandLog entity.
func (c *DeviceCommandLogClient) Create() *DeviceCommandLogCreate {
	mutation := newDeviceCommandLogMutation(c.config, OpCreate)
	return &DeviceCommandLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeviceCommandLog entities.
func (c *DeviceCommandLogClient) CreateBulk(builders ...*DeviceCommandLogCreate) *DeviceCommandLogCreateBulk {
	return &DeviceCommandLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeviceCommandLogClient) MapCreateBulk(slice any, setFunc func(*DeviceCommandLogCreate, int)) *DeviceCommandLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeviceCommandLogCreateBulk{err: fmt.Errorf("calling to DeviceCommandLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeviceCommandLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeviceCommandLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeviceCommandLog.
func (c *DeviceCommandLogClient) Update() *DeviceCommandLogUpdate {
	mutation := newDeviceCommandLogMutation(c.config, OpUpdate)
	return &DeviceCommandLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeviceCommandLogClient) UpdateOne(_m *DeviceCommandLog) *DeviceCommandLogUpdateOne {
	mutation := newDeviceCommandLogMutation(c.config, OpUpdateOne, withDeviceCommandLog(_m))
	return &DeviceCommandLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeviceCommandLogClient) UpdateOneID(id uuid.UUID) *DeviceCommandLogUpdateOne {
	mutation := newDeviceCommandLogMutation(c.config, OpUpdateOne, withDeviceCommandLogID(id))
	return &DeviceCommandLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeviceCommandLog.
func (c *DeviceCommandLogClient) Delete() *DeviceCommandLogDelete {
	mutation := newDeviceCommandLogMutation(c.config, OpDelete)
	return &DeviceCommandLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeviceCommandLogClient) DeleteOne(_m *DeviceCommandLog) *DeviceCommandLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeviceCommandLogClient) DeleteOneID(id uuid.UUID) *DeviceCommandLogDeleteOne {
	builder := c.Delete().Where(devicecommandlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeviceCommandLogDeleteOne{builder}
}

// Query returns a query builder for DeviceCommandLog.
func (c *DeviceCommandLogClient) Query() *DeviceCommandLogQuery {
	return &DeviceCommandLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeviceCommandLog},
		inters: c.Interceptors(),
	}
}

// Get returns a DeviceCommandLog entity by its id.
func (c *DeviceCommandLogClient) Get(ctx context.Context, id uuid.UUID) (*DeviceCommandLog, error) {
	return c.Query().Where(devicecommandlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeviceCommandLogClient) GetX(ctx context.Context, id uuid.UUID) *DeviceCommandLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeviceCommandLogClient) Hooks() []Hook {
	return c.hooks.DeviceCommandLog
}

// Interceptors returns the client interceptors.
func (c *DeviceCommandLogClient) Interceptors() []Interceptor {
	return c.inters.DeviceCommandLog
}

func (c *DeviceCommandLogClient) mutate(ctx context.Context, m *DeviceCommandLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeviceCommandLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeviceCommandLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeviceCommandLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeviceCommandLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeviceCommandLog mutation op: %q", m.Op())
	}
}

// PersonClient is a client for the Person schema.
type PersonClient struct {
	config
}

// NewPersonClient returns a client for the Person from the given config.
func NewPersonClient(c config) *PersonClient {
	return &PersonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `person.Hooks(f(g(h())))`.
func (c *PersonClient) Use(hooks ...Hook) {
	c.hooks.Person = append(c.hooks.Person, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `person.Intercept(f(g(h())))`.
func (c *PersonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Person = append(c.inters.Person, interceptors...)
}

// Create returns a builder for creating a Person entity.
func (c *PersonClient) Create() *PersonCreate {
	mutation := newPersonMutation(c.config, OpCreate)
	return &PersonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Person entities.
func (c *PersonClient) CreateBulk(builders ...*PersonCreate) *PersonCreateBulk {
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonClient) MapCreateBulk(slice any, setFunc func(*PersonCreate, int)) *PersonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonCreateBulk{err: fmt.Errorf("calling to PersonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Person.
func (c *PersonClient) Update() *PersonUpdate {
	mutation := newPersonMutation(c.config, OpUpdate)
	return &PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonClient) UpdateOne(_m *Person) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPerson(_m))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonClient) UpdateOneID(id uuid.UUID) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPersonID(id))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Person.
func (c *PersonClient) Delete() *PersonDelete {
	mutation := newPersonMutation(c.config, OpDelete)
	return &PersonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonClient) DeleteOne(_m *Person) *PersonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonClient) DeleteOneID(id uuid.UUID) *PersonDeleteOne {
	builder := c.Delete().Where(person.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonDeleteOne{builder}
}

// Query returns a query builder for Person.
func (c *PersonClient) Query() *PersonQuery {
	return &PersonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerson},
		inters: c.Interceptors(),
	}
}

// Get returns a Person entity by its id.
func (c *PersonClient) Get(ctx context.Context, id uuid.UUID) (*Person, error) {
	return c.Query().Where(person.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonClient) GetX(ctx context.Context, id uuid.UUID) *Person {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReadings queries the readings edge of a Person.
func (c *PersonClient) QueryReadings(_m *Person) *BiometricReadingQuery {
	query := (&BiometricReadingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(person.Table, person.FieldID, id),
			sqlgraph.To(biometricreading.Table, biometricreading.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, person.ReadingsTable, person.ReadingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PersonClient) Hooks() []Hook {
	return c.hooks.Person
}

// Interceptors returns the client interceptors.
func (c *PersonClient) Interceptors() []Interceptor {
	return c.inters.Person
}

func (c *PersonClient) mutate(ctx context.Context, m *PersonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Person mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BiometricReading, DeviceCommandLog, Person []ent.Hook
	}
	inters struct {
		BiometricReading, DeviceCommandLog, Person []ent.Interceptor
	}
)
