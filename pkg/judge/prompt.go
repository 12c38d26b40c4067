package judge

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/callscope-ai/callscope/pkg/models"
)

const systemPrompt = `You are a strict quality-assurance reviewer for recorded customer support calls.
You receive one stage of a call: its expected agent behaviors, the deterministic rule results, and the redacted transcript excerpt for that stage.
Judge only what the transcript shows. Personally identifying information has been replaced with placeholders like {{NAME}}; treat placeholders as satisfied content, never as missing information.
Score the stage from 0 to 100, judge each expected step, and report your confidence from 0 to 1.
Respond with JSON only, following the response schema exactly.`

// buildUserPrompt renders one stage's evaluation request. The rendering
// is deterministic: same inputs, same bytes, same prompt hash.
func buildUserPrompt(in StageInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Stage: %s\n\n", in.Stage.Name)

	b.WriteString("## Expected steps\n")
	for _, sp := range in.Steps {
		fmt.Fprintf(&b, "- id=%s name=%q type=%s role=%s", sp.ID, sp.Name, sp.BehaviorType, sp.ExpectedRole)
		if sp.Description != "" {
			fmt.Fprintf(&b, " description=%q", sp.Description)
		}
		if len(sp.ExpectedPhrases) > 0 {
			fmt.Fprintf(&b, " phrases=%q", strings.Join(sp.ExpectedPhrases, "; "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Deterministic rule results\n")
	if len(in.Rules) == 0 {
		b.WriteString("(none)\n")
	}
	for _, r := range in.Rules {
		status := "PASSED"
		if !r.Passed {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "- %s %s severity=%s", r.Type, status, r.Severity)
		if r.Detail != "" {
			fmt.Fprintf(&b, " detail=%q", r.Detail)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Transcript excerpt\n")
	if len(in.Segments) == 0 {
		b.WriteString("(no utterances detected in this stage's window)\n")
	}
	for _, seg := range in.Segments {
		fmt.Fprintf(&b, "[%.1f-%.1f] %s: %s\n", seg.StartS, seg.EndS, roleLabel(seg.Speaker), seg.Text)
	}

	return b.String()
}

func roleLabel(s models.Speaker) string {
	switch s {
	case models.SpeakerAgent:
		return "Agent"
	case models.SpeakerCaller:
		return "Caller"
	default:
		return "Other"
	}
}

// PromptSize reports the total prompt characters one stage would send,
// for sandbox usage estimates.
func PromptSize(in StageInput) int {
	return len(systemPrompt) + len(buildUserPrompt(in))
}

// promptHash fingerprints the full prompt for reproducibility audits.
func promptHash(system, user string) string {
	h := sha256.Sum256([]byte(system + "\n" + user))
	return hex.EncodeToString(h[:])
}
