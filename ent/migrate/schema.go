// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlueprintsColumns holds the columns for the "blueprints" table.
	BlueprintsColumns = []*schema.Column{
		{Name: "blueprint_id", Type: field.TypeString, Unique: true},
		{Name: "company_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
		{Name: "version_number", Type: field.TypeInt, Default: 1},
		{Name: "compiled_flow_version_id", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BlueprintsTable holds the schema information for the "blueprints" table.
	BlueprintsTable = &schema.Table{
		Name:       "blueprints",
		Columns:    BlueprintsColumns,
		PrimaryKey: []*schema.Column{BlueprintsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blueprint_company_id",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[1]},
			},
			{
				Name:    "blueprint_status",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[4]},
			},
			{
				Name:    "blueprint_company_id_name",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[1], BlueprintsColumns[2]},
			},
		},
	}
	// BlueprintBehaviorsColumns holds the columns for the "blueprint_behaviors" table.
	BlueprintBehaviorsColumns = []*schema.Column{
		{Name: "behavior_id", Type: field.TypeString, Unique: true},
		{Name: "behavior_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "behavior_type", Type: field.TypeEnum, Enums: []string{"required", "optional", "forbidden", "critical"}},
		{Name: "detection_mode", Type: field.TypeEnum, Enums: []string{"semantic", "exact_phrase", "hybrid"}},
		{Name: "phrases", Type: field.TypeJSON, Nullable: true},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
		{Name: "critical_action", Type: field.TypeEnum, Nullable: true, Enums: []string{"fail_stage", "fail_overall", "flag_only"}},
		{Name: "ui_order", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "stage_id", Type: field.TypeString},
	}
	// BlueprintBehaviorsTable holds the schema information for the "blueprint_behaviors" table.
	BlueprintBehaviorsTable = &schema.Table{
		Name:       "blueprint_behaviors",
		Columns:    BlueprintBehaviorsColumns,
		PrimaryKey: []*schema.Column{BlueprintBehaviorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blueprint_behaviors_blueprint_stages_behaviors",
				Columns:    []*schema.Column{BlueprintBehaviorsColumns[10]},
				RefColumns: []*schema.Column{BlueprintStagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blueprintbehavior_stage_id_behavior_name",
				Unique:  true,
				Columns: []*schema.Column{BlueprintBehaviorsColumns[10], BlueprintBehaviorsColumns[1]},
			},
		},
	}
	// BlueprintStagesColumns holds the columns for the "blueprint_stages" table.
	BlueprintStagesColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "ordering_index", Type: field.TypeInt},
		{Name: "stage_weight", Type: field.TypeFloat64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "blueprint_id", Type: field.TypeString},
	}
	// BlueprintStagesTable holds the schema information for the "blueprint_stages" table.
	BlueprintStagesTable = &schema.Table{
		Name:       "blueprint_stages",
		Columns:    BlueprintStagesColumns,
		PrimaryKey: []*schema.Column{BlueprintStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blueprint_stages_blueprints_stages",
				Columns:    []*schema.Column{BlueprintStagesColumns[5]},
				RefColumns: []*schema.Column{BlueprintsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blueprintstage_blueprint_id_ordering_index",
				Unique:  true,
				Columns: []*schema.Column{BlueprintStagesColumns[5], BlueprintStagesColumns[2]},
			},
			{
				Name:    "blueprintstage_blueprint_id_stage_name",
				Unique:  true,
				Columns: []*schema.Column{BlueprintStagesColumns[5], BlueprintStagesColumns[1]},
			},
		},
	}
	// BlueprintVersionsColumns holds the columns for the "blueprint_versions" table.
	BlueprintVersionsColumns = []*schema.Column{
		{Name: "blueprint_version_id", Type: field.TypeString, Unique: true},
		{Name: "version_number", Type: field.TypeInt},
		{Name: "snapshot", Type: field.TypeJSON},
		{Name: "compiled_flow_version_id", Type: field.TypeString, Nullable: true},
		{Name: "published_by", Type: field.TypeString, Nullable: true},
		{Name: "publish_note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "blueprint_id", Type: field.TypeString},
	}
	// BlueprintVersionsTable holds the schema information for the "blueprint_versions" table.
	BlueprintVersionsTable = &schema.Table{
		Name:       "blueprint_versions",
		Columns:    BlueprintVersionsColumns,
		PrimaryKey: []*schema.Column{BlueprintVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blueprint_versions_blueprints_versions",
				Columns:    []*schema.Column{BlueprintVersionsColumns[7]},
				RefColumns: []*schema.Column{BlueprintsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blueprintversion_blueprint_id_version_number",
				Unique:  true,
				Columns: []*schema.Column{BlueprintVersionsColumns[7], BlueprintVersionsColumns[1]},
			},
		},
	}
	// CompiledComplianceRulesColumns holds the columns for the "compiled_compliance_rules" table.
	CompiledComplianceRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "rule_type", Type: field.TypeEnum, Enums: []string{"required_phrase", "forbidden_phrase", "required_step", "sequence_rule", "timing_rule", "verification_rule", "conditional_rule"}},
		{Name: "target_step_id", Type: field.TypeString, Nullable: true},
		{Name: "phrases", Type: field.TypeJSON, Nullable: true},
		{Name: "match_mode", Type: field.TypeEnum, Nullable: true, Enums: []string{"exact", "contains", "regex", "semantic", "hybrid"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "major", "minor"}},
		{Name: "action_on_fail", Type: field.TypeEnum, Nullable: true, Enums: []string{"fail_stage", "fail_overall", "flag_only"}},
		{Name: "timing_constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "flow_version_id", Type: field.TypeString},
	}
	// CompiledComplianceRulesTable holds the schema information for the "compiled_compliance_rules" table.
	CompiledComplianceRulesTable = &schema.Table{
		Name:       "compiled_compliance_rules",
		Columns:    CompiledComplianceRulesColumns,
		PrimaryKey: []*schema.Column{CompiledComplianceRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "compiled_compliance_rules_compiled_flow_versions_rules",
				Columns:    []*schema.Column{CompiledComplianceRulesColumns[9]},
				RefColumns: []*schema.Column{CompiledFlowVersionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "compiledcompliancerule_flow_version_id_rule_type",
				Unique:  false,
				Columns: []*schema.Column{CompiledComplianceRulesColumns[9], CompiledComplianceRulesColumns[1]},
			},
			{
				Name:    "compiledcompliancerule_target_step_id",
				Unique:  false,
				Columns: []*schema.Column{CompiledComplianceRulesColumns[2]},
			},
		},
	}
	// CompiledFlowStagesColumns holds the columns for the "compiled_flow_stages" table.
	CompiledFlowStagesColumns = []*schema.Column{
		{Name: "compiled_stage_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "ordering_index", Type: field.TypeInt},
		{Name: "stage_weight", Type: field.TypeFloat64, Nullable: true},
		{Name: "flow_version_id", Type: field.TypeString},
	}
	// CompiledFlowStagesTable holds the schema information for the "compiled_flow_stages" table.
	CompiledFlowStagesTable = &schema.Table{
		Name:       "compiled_flow_stages",
		Columns:    CompiledFlowStagesColumns,
		PrimaryKey: []*schema.Column{CompiledFlowStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "compiled_flow_stages_compiled_flow_versions_stages",
				Columns:    []*schema.Column{CompiledFlowStagesColumns[4]},
				RefColumns: []*schema.Column{CompiledFlowVersionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "compiledflowstage_flow_version_id_ordering_index",
				Unique:  true,
				Columns: []*schema.Column{CompiledFlowStagesColumns[4], CompiledFlowStagesColumns[2]},
			},
		},
	}
	// CompiledFlowStepsColumns holds the columns for the "compiled_flow_steps" table.
	CompiledFlowStepsColumns = []*schema.Column{
		{Name: "compiled_step_id", Type: field.TypeString, Unique: true},
		{Name: "flow_version_id", Type: field.TypeString},
		{Name: "step_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ordering_index", Type: field.TypeInt},
		{Name: "expected_role", Type: field.TypeEnum, Enums: []string{"agent", "caller"}, Default: "agent"},
		{Name: "expected_phrases", Type: field.TypeJSON, Nullable: true},
		{Name: "detection_hint", Type: field.TypeEnum, Enums: []string{"semantic", "exact_phrase", "hybrid"}},
		{Name: "behavior_type", Type: field.TypeEnum, Enums: []string{"required", "optional", "forbidden", "critical"}},
		{Name: "critical_action", Type: field.TypeEnum, Nullable: true, Enums: []string{"fail_stage", "fail_overall", "flag_only"}},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "compiled_stage_id", Type: field.TypeString},
	}
	// CompiledFlowStepsTable holds the schema information for the "compiled_flow_steps" table.
	CompiledFlowStepsTable = &schema.Table{
		Name:       "compiled_flow_steps",
		Columns:    CompiledFlowStepsColumns,
		PrimaryKey: []*schema.Column{CompiledFlowStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "compiled_flow_steps_compiled_flow_stages_steps",
				Columns:    []*schema.Column{CompiledFlowStepsColumns[12]},
				RefColumns: []*schema.Column{CompiledFlowStagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "compiledflowstep_flow_version_id",
				Unique:  false,
				Columns: []*schema.Column{CompiledFlowStepsColumns[1]},
			},
			{
				Name:    "compiledflowstep_compiled_stage_id_ordering_index",
				Unique:  true,
				Columns: []*schema.Column{CompiledFlowStepsColumns[12], CompiledFlowStepsColumns[4]},
			},
		},
	}
	// CompiledFlowVersionsColumns holds the columns for the "compiled_flow_versions" table.
	CompiledFlowVersionsColumns = []*schema.Column{
		{Name: "flow_version_id", Type: field.TypeString, Unique: true},
		{Name: "company_id", Type: field.TypeString},
		{Name: "blueprint_version_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompiledFlowVersionsTable holds the schema information for the "compiled_flow_versions" table.
	CompiledFlowVersionsTable = &schema.Table{
		Name:       "compiled_flow_versions",
		Columns:    CompiledFlowVersionsColumns,
		PrimaryKey: []*schema.Column{CompiledFlowVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "compiledflowversion_company_id",
				Unique:  false,
				Columns: []*schema.Column{CompiledFlowVersionsColumns[1]},
			},
		},
	}
	// CompiledRubricTemplatesColumns holds the columns for the "compiled_rubric_templates" table.
	CompiledRubricTemplatesColumns = []*schema.Column{
		{Name: "rubric_id", Type: field.TypeString, Unique: true},
		{Name: "categories", Type: field.TypeJSON},
		{Name: "mappings", Type: field.TypeJSON},
		{Name: "flow_version_id", Type: field.TypeString, Unique: true},
	}
	// CompiledRubricTemplatesTable holds the schema information for the "compiled_rubric_templates" table.
	CompiledRubricTemplatesTable = &schema.Table{
		Name:       "compiled_rubric_templates",
		Columns:    CompiledRubricTemplatesColumns,
		PrimaryKey: []*schema.Column{CompiledRubricTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "compiled_rubric_templates_compiled_flow_versions_rubric",
				Columns:    []*schema.Column{CompiledRubricTemplatesColumns[3]},
				RefColumns: []*schema.Column{CompiledFlowVersionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "evaluation_id", Type: field.TypeString, Unique: true},
		{Name: "blueprint_id", Type: field.TypeString},
		{Name: "compiled_flow_version_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "overall_score", Type: field.TypeInt, Nullable: true},
		{Name: "overall_passed", Type: field.TypeBool, Nullable: true},
		{Name: "requires_human_review", Type: field.TypeBool, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "deterministic_results", Type: field.TypeJSON, Nullable: true},
		{Name: "llm_stage_evaluations", Type: field.TypeJSON, Nullable: true},
		{Name: "final_evaluation", Type: field.TypeJSON, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "recording_id", Type: field.TypeString},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_recordings_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[16]},
				RefColumns: []*schema.Column{RecordingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_blueprint_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[1]},
			},
			{
				Name:    "evaluation_status",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[3]},
			},
			{
				Name:    "evaluation_recording_id",
				Unique:  true,
				Columns: []*schema.Column{EvaluationsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"compile_blueprint", "evaluate_recording", "sandbox_evaluate"}},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "timed_out", "cancelled"}, Default: "pending"},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_after", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[8]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[11]},
			},
			{
				Name:    "job_kind_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4]},
			},
		},
	}
	// RecordingsColumns holds the columns for the "recordings" table.
	RecordingsColumns = []*schema.Column{
		{Name: "recording_id", Type: field.TypeString, Unique: true},
		{Name: "company_id", Type: field.TypeString},
		{Name: "audio_url", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "failed"}, Default: "queued"},
		{Name: "duration_s", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// RecordingsTable holds the schema information for the "recordings" table.
	RecordingsTable = &schema.Table{
		Name:       "recordings",
		Columns:    RecordingsColumns,
		PrimaryKey: []*schema.Column{RecordingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recording_company_id",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[1]},
			},
			{
				Name:    "recording_status",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[3]},
			},
			{
				Name:    "recording_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// SandboxRunsColumns holds the columns for the "sandbox_runs" table.
	SandboxRunsColumns = []*schema.Column{
		{Name: "sandbox_run_id", Type: field.TypeString, Unique: true},
		{Name: "blueprint_id", Type: field.TypeString},
		{Name: "compiled_flow_version_id", Type: field.TypeString, Nullable: true},
		{Name: "recording_id", Type: field.TypeString, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "transcript_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SandboxRunsTable holds the schema information for the "sandbox_runs" table.
	SandboxRunsTable = &schema.Table{
		Name:       "sandbox_runs",
		Columns:    SandboxRunsColumns,
		PrimaryKey: []*schema.Column{SandboxRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxrun_blueprint_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxRunsColumns[1]},
			},
			{
				Name:    "sandboxrun_status",
				Unique:  false,
				Columns: []*schema.Column{SandboxRunsColumns[5]},
			},
			{
				Name:    "sandboxrun_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{SandboxRunsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "idempotency_key IS NOT NULL",
				},
			},
		},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "transcript_id", Type: field.TypeString, Unique: true},
		{Name: "transcript_text", Type: field.TypeString, Size: 2147483647},
		{Name: "diarized_segments", Type: field.TypeJSON},
		{Name: "sentiment_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "asr_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recording_id", Type: field.TypeString, Unique: true},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcripts_recordings_transcript",
				Columns:    []*schema.Column{TranscriptsColumns[6]},
				RefColumns: []*schema.Column{RecordingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlueprintsTable,
		BlueprintBehaviorsTable,
		BlueprintStagesTable,
		BlueprintVersionsTable,
		CompiledComplianceRulesTable,
		CompiledFlowStagesTable,
		CompiledFlowStepsTable,
		CompiledFlowVersionsTable,
		CompiledRubricTemplatesTable,
		EvaluationsTable,
		JobsTable,
		RecordingsTable,
		SandboxRunsTable,
		TranscriptsTable,
	}
)

func init() {
	BlueprintBehaviorsTable.ForeignKeys[0].RefTable = BlueprintStagesTable
	BlueprintStagesTable.ForeignKeys[0].RefTable = BlueprintsTable
	BlueprintVersionsTable.ForeignKeys[0].RefTable = BlueprintsTable
	CompiledComplianceRulesTable.ForeignKeys[0].RefTable = CompiledFlowVersionsTable
	CompiledFlowStagesTable.ForeignKeys[0].RefTable = CompiledFlowVersionsTable
	CompiledFlowStepsTable.ForeignKeys[0].RefTable = CompiledFlowStagesTable
	CompiledRubricTemplatesTable.ForeignKeys[0].RefTable = CompiledFlowVersionsTable
	EvaluationsTable.ForeignKeys[0].RefTable = RecordingsTable
	TranscriptsTable.ForeignKeys[0].RefTable = RecordingsTable
}
