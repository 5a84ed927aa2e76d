// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/officinaverde/blog-api/ent/contactmessage"
	"github.com/officinaverde/blog-api/ent/predicate"
)

// ContactMessageUpdate is the builder for updating ContactMessage entities.
type ContactMessageUpdate struct {
	config
	hooks     []Hook
	mutation  *ContactMessageMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (cmu *ContactMessageUpdate) Where(ps ...predicate.ContactMessage) *ContactMessageUpdate {
	cmu.mutation.Where(ps...)
	return cmu
}

// SetName sets the "name" field.
func (cmu *ContactMessageUpdate) SetName(s string) *ContactMessageUpdate {
	cmu.mutation.SetName(s)
	return cmu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableName(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetName(*s)
	}
	return cmu
}

// SetEmail sets the "email" field.
func (cmu *ContactMessageUpdate) SetEmail(s string) *ContactMessageUpdate {
	cmu.mutation.SetEmail(s)
	return cmu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableEmail(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetEmail(*s)
	}
	return cmu
}

// SetSubject sets the "subject" field.
func (cmu *ContactMessageUpdate) SetSubject(s string) *ContactMessageUpdate {
	cmu.mutation.SetSubject(s)
	return cmu
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableSubject(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetSubject(*s)
	}
	return cmu
}

// ClearSubject clears the value of the "subject" field.
func (cmu *ContactMessageUpdate) ClearSubject() *ContactMessageUpdate {
	cmu.mutation.ClearSubject()
	return cmu
}

// SetMessage sets the "message" field.
func (cmu *ContactMessageUpdate) SetMessage(s string) *ContactMessageUpdate {
	cmu.mutation.SetMessage(s)
	return cmu
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (cmu *ContactMessageUpdate) SetNillableMessage(s *string) *ContactMessageUpdate {
	if s != nil {
		cmu.SetMessage(*s)
	}
	return cmu
}

// Mutation returns the ContactMessageMutation object of the builder.
func (cmu *ContactMessageUpdate) Mutation() *ContactMessageMutation {
	return cmu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cmu *ContactMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cmu.sqlSave, cmu.mutation, cmu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cmu *ContactMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := cmu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cmu *ContactMessageUpdate) Exec(ctx context.Context) error {
	_, err := cmu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmu *ContactMessageUpdate) ExecX(ctx context.Context) {
	if err := cmu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmu *ContactMessageUpdate) check() error {
	if v, ok := cmu.mutation.Name(); ok {
		if err := contactmessage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.name": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.Email(); ok {
		if err := contactmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.email": %w`, err)}
		}
	}
	if v, ok := cmu.mutation.Message(); ok {
		if err := contactmessage.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.message": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cmu *ContactMessageUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ContactMessageUpdate {
	cmu.modifiers = append(cmu.modifiers, modifiers...)
	return cmu
}

func (cmu *ContactMessageUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cmu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUint))
	if ps := cmu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cmu.mutation.Name(); ok {
		_spec.SetField(contactmessage.FieldName, field.TypeString, value)
	}
	if value, ok := cmu.mutation.Email(); ok {
		_spec.SetField(contactmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := cmu.mutation.Subject(); ok {
		_spec.SetField(contactmessage.FieldSubject, field.TypeString, value)
	}
	if cmu.mutation.SubjectCleared() {
		_spec.ClearField(contactmessage.FieldSubject, field.TypeString)
	}
	if value, ok := cmu.mutation.Message(); ok {
		_spec.SetField(contactmessage.FieldMessage, field.TypeString, value)
	}
	_spec.AddModifiers(cmu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, cmu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cmu.mutation.done = true
	return n, nil
}

// ContactMessageUpdateOne is the builder for updating a single ContactMessage entity.
type ContactMessageUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ContactMessageMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetName sets the "name" field.
func (cmuo *ContactMessageUpdateOne) SetName(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetName(s)
	return cmuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableName(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetName(*s)
	}
	return cmuo
}

// SetEmail sets the "email" field.
func (cmuo *ContactMessageUpdateOne) SetEmail(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetEmail(s)
	return cmuo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableEmail(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetEmail(*s)
	}
	return cmuo
}

// SetSubject sets the "subject" field.
func (cmuo *ContactMessageUpdateOne) SetSubject(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetSubject(s)
	return cmuo
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableSubject(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetSubject(*s)
	}
	return cmuo
}

// ClearSubject clears the value of the "subject" field.
func (cmuo *ContactMessageUpdateOne) ClearSubject() *ContactMessageUpdateOne {
	cmuo.mutation.ClearSubject()
	return cmuo
}

// SetMessage sets the "message" field.
func (cmuo *ContactMessageUpdateOne) SetMessage(s string) *ContactMessageUpdateOne {
	cmuo.mutation.SetMessage(s)
	return cmuo
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (cmuo *ContactMessageUpdateOne) SetNillableMessage(s *string) *ContactMessageUpdateOne {
	if s != nil {
		cmuo.SetMessage(*s)
	}
	return cmuo
}

// Mutation returns the ContactMessageMutation object of the builder.
func (cmuo *ContactMessageUpdateOne) Mutation() *ContactMessageMutation {
	return cmuo.mutation
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (cmuo *ContactMessageUpdateOne) Where(ps ...predicate.ContactMessage) *ContactMessageUpdateOne {
	cmuo.mutation.Where(ps...)
	return cmuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cmuo *ContactMessageUpdateOne) Select(field string, fields ...string) *ContactMessageUpdateOne {
	cmuo.fields = append([]string{field}, fields...)
	return cmuo
}

// Save executes the query and returns the updated ContactMessage entity.
func (cmuo *ContactMessageUpdateOne) Save(ctx context.Context) (*ContactMessage, error) {
	return withHooks(ctx, cmuo.sqlSave, cmuo.mutation, cmuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cmuo *ContactMessageUpdateOne) SaveX(ctx context.Context) *ContactMessage {
	node, err := cmuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cmuo *ContactMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := cmuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cmuo *ContactMessageUpdateOne) ExecX(ctx context.Context) {
	if err := cmuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cmuo *ContactMessageUpdateOne) check() error {
	if v, ok := cmuo.mutation.Name(); ok {
		if err := contactmessage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.name": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.Email(); ok {
		if err := contactmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.email": %w`, err)}
		}
	}
	if v, ok := cmuo.mutation.Message(); ok {
		if err := contactmessage.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ContactMessage.message": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cmuo *ContactMessageUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ContactMessageUpdateOne {
	cmuo.modifiers = append(cmuo.modifiers, modifiers...)
	return cmuo
}

func (cmuo *ContactMessageUpdateOne) sqlSave(ctx context.Context) (_node *ContactMessage, err error) {
	if err := cmuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUint))
	id, ok := cmuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContactMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cmuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contactmessage.FieldID)
		for _, f := range fields {
			if !contactmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contactmessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cmuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cmuo.mutation.Name(); ok {
		_spec.SetField(contactmessage.FieldName, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.Email(); ok {
		_spec.SetField(contactmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := cmuo.mutation.Subject(); ok {
		_spec.SetField(contactmessage.FieldSubject, field.TypeString, value)
	}
	if cmuo.mutation.SubjectCleared() {
		_spec.ClearField(contactmessage.FieldSubject, field.TypeString)
	}
	if value, ok := cmuo.mutation.Message(); ok {
		_spec.SetField(contactmessage.FieldMessage, field.TypeString, value)
	}
	_spec.AddModifiers(cmuo.modifiers...)
	_node = &ContactMessage{config: cmuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cmuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cmuo.mutation.done = true
	return _node, nil
}
