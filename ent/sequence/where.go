// Code generated by ent, DO NOT EDIT.

package sequence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/mbuckley/feprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Sequence {
	return predicate.Sequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Sequence {
	return predicate.Sequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Sequence {
	return predicate.Sequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Sequence {
	return predicate.Sequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Sequence {
	return predicate.Sequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Sequence {
	return predicate.Sequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Sequence {
	return predicate.Sequence(sql.FieldLTE(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldTopic, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldOrder, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Sequence {
	return predicate.Sequence(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Sequence {
	return predicate.Sequence(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldContainsFold(FieldTopic, v))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...string) predicate.Sequence {
	return predicate.Sequence(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...string) predicate.Sequence {
	return predicate.Sequence(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldLTE(FieldOrder, v))
}

// OrderContains applies the Contains predicate on the "order" field.
func OrderContains(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldContains(FieldOrder, v))
}

// OrderHasPrefix applies the HasPrefix predicate on the "order" field.
func OrderHasPrefix(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldHasPrefix(FieldOrder, v))
}

// OrderHasSuffix applies the HasSuffix predicate on the "order" field.
func OrderHasSuffix(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldHasSuffix(FieldOrder, v))
}

// OrderEqualFold applies the EqualFold predicate on the "order" field.
func OrderEqualFold(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldEqualFold(FieldOrder, v))
}

// OrderContainsFold applies the ContainsFold predicate on the "order" field.
func OrderContainsFold(v string) predicate.Sequence {
	return predicate.Sequence(sql.FieldContainsFold(FieldOrder, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sequence) predicate.Sequence {
	return predicate.Sequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sequence) predicate.Sequence {
	return predicate.Sequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sequence) predicate.Sequence {
	return predicate.Sequence(sql.NotPredicates(p))
}
