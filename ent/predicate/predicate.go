// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Blueprint is the predicate function for blueprint builders.
type Blueprint func(*sql.Selector)

// BlueprintBehavior is the predicate function for blueprintbehavior builders.
type BlueprintBehavior func(*sql.Selector)

// BlueprintStage is the predicate function for blueprintstage builders.
type BlueprintStage func(*sql.Selector)

// BlueprintVersion is the predicate function for blueprintversion builders.
type BlueprintVersion func(*sql.Selector)

// CompiledComplianceRule is the predicate function for compiledcompliancerule builders.
type CompiledComplianceRule func(*sql.Selector)

// CompiledFlowStage is the predicate function for compiledflowstage builders.
type CompiledFlowStage func(*sql.Selector)

// CompiledFlowStep is the predicate function for compiledflowstep builders.
type CompiledFlowStep func(*sql.Selector)

// CompiledFlowVersion is the predicate function for compiledflowversion builders.
type CompiledFlowVersion func(*sql.Selector)

// CompiledRubricTemplate is the predicate function for compiledrubrictemplate builders.
type CompiledRubricTemplate func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Recording is the predicate function for recording builders.
type Recording func(*sql.Selector)

// SandboxRun is the predicate function for sandboxrun builders.
type SandboxRun func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)
