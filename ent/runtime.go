// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mbuckley/feprep/ent/advisoryevent"
	"github.com/mbuckley/feprep/ent/cursor"
	"github.com/mbuckley/feprep/ent/examrecord"
	"github.com/mbuckley/feprep/ent/historyentry"
	"github.com/mbuckley/feprep/ent/schema"
	"github.com/mbuckley/feprep/ent/sequence"
	"github.com/mbuckley/feprep/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	advisoryeventFields := schema.AdvisoryEvent{}.Fields()
	_ = advisoryeventFields
	// advisoryeventDescProvider is the schema descriptor for provider field.
	advisoryeventDescProvider := advisoryeventFields[0].Descriptor()
	// advisoryevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	advisoryevent.ProviderValidator = advisoryeventDescProvider.Validators[0].(func(string) error)
	// advisoryeventDescPurpose is the schema descriptor for purpose field.
	advisoryeventDescPurpose := advisoryeventFields[1].Descriptor()
	// advisoryevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	advisoryevent.PurposeValidator = advisoryeventDescPurpose.Validators[0].(func(string) error)
	// advisoryeventDescInputTokens is the schema descriptor for input_tokens field.
	advisoryeventDescInputTokens := advisoryeventFields[3].Descriptor()
	// advisoryevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	advisoryevent.DefaultInputTokens = advisoryeventDescInputTokens.Default.(int)
	// advisoryeventDescOutputTokens is the schema descriptor for output_tokens field.
	advisoryeventDescOutputTokens := advisoryeventFields[4].Descriptor()
	// advisoryevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	advisoryevent.DefaultOutputTokens = advisoryeventDescOutputTokens.Default.(int)
	// advisoryeventDescLatencyMs is the schema descriptor for latency_ms field.
	advisoryeventDescLatencyMs := advisoryeventFields[5].Descriptor()
	// advisoryevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	advisoryevent.DefaultLatencyMs = advisoryeventDescLatencyMs.Default.(int64)
	// advisoryeventDescTimestamp is the schema descriptor for timestamp field.
	advisoryeventDescTimestamp := advisoryeventFields[8].Descriptor()
	// advisoryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	advisoryevent.DefaultTimestamp = advisoryeventDescTimestamp.Default.(func() time.Time)
	cursorFields := schema.Cursor{}.Fields()
	_ = cursorFields
	// cursorDescTopic is the schema descriptor for topic field.
	cursorDescTopic := cursorFields[0].Descriptor()
	// cursor.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	cursor.TopicValidator = cursorDescTopic.Validators[0].(func(string) error)
	// cursorDescPosition is the schema descriptor for position field.
	cursorDescPosition := cursorFields[1].Descriptor()
	// cursor.DefaultPosition holds the default value on creation for the position field.
	cursor.DefaultPosition = cursorDescPosition.Default.(int)
	// cursor.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	cursor.PositionValidator = cursorDescPosition.Validators[0].(func(int) error)
	examrecordFields := schema.ExamRecord{}.Fields()
	_ = examrecordFields
	// examrecordDescRecordID is the schema descriptor for record_id field.
	examrecordDescRecordID := examrecordFields[0].Descriptor()
	// examrecord.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	examrecord.RecordIDValidator = examrecordDescRecordID.Validators[0].(func(string) error)
	// examrecordDescTopic is the schema descriptor for topic field.
	examrecordDescTopic := examrecordFields[1].Descriptor()
	// examrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	examrecord.TopicValidator = examrecordDescTopic.Validators[0].(func(string) error)
	// examrecordDescScore is the schema descriptor for score field.
	examrecordDescScore := examrecordFields[2].Descriptor()
	// examrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	examrecord.ScoreValidator = examrecordDescScore.Validators[0].(func(int) error)
	// examrecordDescTotal is the schema descriptor for total field.
	examrecordDescTotal := examrecordFields[3].Descriptor()
	// examrecord.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	examrecord.TotalValidator = examrecordDescTotal.Validators[0].(func(int) error)
	// examrecordDescTimestamp is the schema descriptor for timestamp field.
	examrecordDescTimestamp := examrecordFields[5].Descriptor()
	// examrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	examrecord.DefaultTimestamp = examrecordDescTimestamp.Default.(func() time.Time)
	historyentryFields := schema.HistoryEntry{}.Fields()
	_ = historyentryFields
	// historyentryDescQuestionID is the schema descriptor for question_id field.
	historyentryDescQuestionID := historyentryFields[0].Descriptor()
	// historyentry.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	historyentry.QuestionIDValidator = historyentryDescQuestionID.Validators[0].(func(string) error)
	// historyentryDescTopic is the schema descriptor for topic field.
	historyentryDescTopic := historyentryFields[1].Descriptor()
	// historyentry.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	historyentry.TopicValidator = historyentryDescTopic.Validators[0].(func(string) error)
	// historyentryDescTimestamp is the schema descriptor for timestamp field.
	historyentryDescTimestamp := historyentryFields[3].Descriptor()
	// historyentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	historyentry.DefaultTimestamp = historyentryDescTimestamp.Default.(func() time.Time)
	sequenceFields := schema.Sequence{}.Fields()
	_ = sequenceFields
	// sequenceDescTopic is the schema descriptor for topic field.
	sequenceDescTopic := sequenceFields[0].Descriptor()
	// sequence.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sequence.TopicValidator = sequenceDescTopic.Validators[0].(func(string) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
}
