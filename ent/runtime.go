// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintversion"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/ent/schema"
	"github.com/callscope-ai/callscope/ent/transcript"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blueprintFields := schema.Blueprint{}.Fields()
	_ = blueprintFields
	// blueprintDescVersionNumber is the schema descriptor for version_number field.
	blueprintDescVersionNumber := blueprintFields[5].Descriptor()
	// blueprint.DefaultVersionNumber holds the default value on creation for the version_number field.
	blueprint.DefaultVersionNumber = blueprintDescVersionNumber.Default.(int)
	// blueprintDescCreatedAt is the schema descriptor for created_at field.
	blueprintDescCreatedAt := blueprintFields[8].Descriptor()
	// blueprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprint.DefaultCreatedAt = blueprintDescCreatedAt.Default.(func() time.Time)
	// blueprintDescUpdatedAt is the schema descriptor for updated_at field.
	blueprintDescUpdatedAt := blueprintFields[9].Descriptor()
	// blueprint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blueprint.DefaultUpdatedAt = blueprintDescUpdatedAt.Default.(func() time.Time)
	// blueprint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blueprint.UpdateDefaultUpdatedAt = blueprintDescUpdatedAt.UpdateDefault.(func() time.Time)
	blueprintbehaviorFields := schema.BlueprintBehavior{}.Fields()
	_ = blueprintbehaviorFields
	// blueprintbehaviorDescWeight is the schema descriptor for weight field.
	blueprintbehaviorDescWeight := blueprintbehaviorFields[7].Descriptor()
	// blueprintbehavior.DefaultWeight holds the default value on creation for the weight field.
	blueprintbehavior.DefaultWeight = blueprintbehaviorDescWeight.Default.(float64)
	// blueprintbehaviorDescUIOrder is the schema descriptor for ui_order field.
	blueprintbehaviorDescUIOrder := blueprintbehaviorFields[9].Descriptor()
	// blueprintbehavior.DefaultUIOrder holds the default value on creation for the ui_order field.
	blueprintbehavior.DefaultUIOrder = blueprintbehaviorDescUIOrder.Default.(int)
	blueprintversionFields := schema.BlueprintVersion{}.Fields()
	_ = blueprintversionFields
	// blueprintversionDescCreatedAt is the schema descriptor for created_at field.
	blueprintversionDescCreatedAt := blueprintversionFields[7].Descriptor()
	// blueprintversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprintversion.DefaultCreatedAt = blueprintversionDescCreatedAt.Default.(func() time.Time)
	compiledflowstepFields := schema.CompiledFlowStep{}.Fields()
	_ = compiledflowstepFields
	// compiledflowstepDescWeight is the schema descriptor for weight field.
	compiledflowstepDescWeight := compiledflowstepFields[11].Descriptor()
	// compiledflowstep.DefaultWeight holds the default value on creation for the weight field.
	compiledflowstep.DefaultWeight = compiledflowstepDescWeight.Default.(float64)
	compiledflowversionFields := schema.CompiledFlowVersion{}.Fields()
	_ = compiledflowversionFields
	// compiledflowversionDescCreatedAt is the schema descriptor for created_at field.
	compiledflowversionDescCreatedAt := compiledflowversionFields[5].Descriptor()
	// compiledflowversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	compiledflowversion.DefaultCreatedAt = compiledflowversionDescCreatedAt.Default.(func() time.Time)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[14].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[6].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	recordingFields := schema.Recording{}.Fields()
	_ = recordingFields
	// recordingDescCreatedAt is the schema descriptor for created_at field.
	recordingDescCreatedAt := recordingFields[6].Descriptor()
	// recording.DefaultCreatedAt holds the default value on creation for the created_at field.
	recording.DefaultCreatedAt = recordingDescCreatedAt.Default.(func() time.Time)
	sandboxrunFields := schema.SandboxRun{}.Fields()
	_ = sandboxrunFields
	// sandboxrunDescCreatedAt is the schema descriptor for created_at field.
	sandboxrunDescCreatedAt := sandboxrunFields[9].Descriptor()
	// sandboxrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	sandboxrun.DefaultCreatedAt = sandboxrunDescCreatedAt.Default.(func() time.Time)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescAsrConfidence is the schema descriptor for asr_confidence field.
	transcriptDescAsrConfidence := transcriptFields[5].Descriptor()
	// transcript.DefaultAsrConfidence holds the default value on creation for the asr_confidence field.
	transcript.DefaultAsrConfidence = transcriptDescAsrConfidence.Default.(float64)
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptFields[6].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
}
