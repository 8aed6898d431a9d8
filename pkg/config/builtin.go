package config

import (
	"sync"
)

// Workflow names built into the binary
const (
	BuiltinWorkflowOutline    = "outline"
	BuiltinWorkflowConference = "conference"
)

// FallbackInstruction is the user instruction used for phases whose name has
// no entry in the instruction map. The fallback is deliberate policy:
// unknown phases still run, they just get a generic task. The validator
// logs every phase that will use it so the gap is visible at load time.
const FallbackInstruction = "Summarize the context above in a helpful way."

// TopicPlaceholder is replaced with the run's topic/theme wherever it
// appears in crew goals and task descriptions.
const TopicPlaceholder = "{topic}"

// BuiltinConfig holds all built-in configuration data: default workflows
// and the default phase-name → user-instruction map.
type BuiltinConfig struct {
	Workflows    map[string]WorkflowConfig
	Instructions map[string]string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Workflows:    initBuiltinWorkflows(),
		Instructions: initBuiltinInstructions(),
	}
}

func initBuiltinWorkflows() map[string]WorkflowConfig {
	return map[string]WorkflowConfig{
		BuiltinWorkflowOutline: {
			Kind:         WorkflowKindPipeline,
			Description:  "Create and refine a research paper outline for a given topic",
			DefaultTopic: "How multi-agent AI systems can support human decision-making",
			ReportTitle:  "DraftForge - Research Paper Outline",
			Phases: []PhaseConfig{
				{
					Name:        "literature",
					Description: "Literature review on the topic",
					Role:        "Literature Review Specialist",
					Instructions: "You conduct a concise but insightful literature review. " +
						"You summarize key themes, representative papers, and open questions, " +
						"highlighting where the field currently stands.",
				},
				{
					Name:        "gaps",
					Description: "Analyze research gaps and propose questions",
					Role:        "Research Gap Analyst",
					Instructions: "You read the literature summary and identify gaps, tensions, and " +
						"promising research directions. You propose 2–3 concrete research " +
						"questions or hypotheses that a new paper could address.",
				},
				{
					Name:        "outline",
					Description: "Design structured paper outline",
					Role:        "Research Paper Outline Designer",
					Instructions: "You turn a research idea into a well-structured paper outline. " +
						"You define sections (e.g., Introduction, Related Work, Method, " +
						"Experiments, Discussion, Conclusion) and list bullet points for " +
						"what each section should cover.",
				},
				{
					Name:        "review",
					Description: "Critically review and refine the outline",
					Role:        "Critical Research Mentor",
					Instructions: "You critically review the proposed outline, checking for coherence, " +
						"feasibility, and novelty. You suggest improvements and highlight " +
						"any missing sections or clarifications needed.",
				},
			},
		},
		BuiltinWorkflowConference: {
			Kind:         WorkflowKindCrew,
			Description:  "Plan a 3-day conference agenda for a given theme",
			DefaultTopic: "AI in Education",
			ReportTitle:  "DraftForge - 3-Day Conference Agenda",
			Process:      ProcessSequential,
			Agents: []CrewAgentConfig{
				{
					Name: "ProgramChair",
					Role: "Program Chair",
					Goal: "Define clear goals, target audience, and high-level tracks for a " +
						"3-day conference on '{topic}'.",
					Backstory: "You have chaired multiple academic and industry conferences. " +
						"You are skilled at clarifying who the conference is for, what " +
						"its objectives are, and how to structure tracks that align with " +
						"those goals.",
				},
				{
					Name: "TrackDesigner",
					Role: "Track & Session Designer",
					Goal: "Design coherent session themes and talk ideas that fit the tracks " +
						"for a 3-day '{topic}' conference.",
					Backstory: "You specialize in turning broad tracks into concrete sessions. " +
						"You ensure each session has a clear focus, a mix of perspectives, " +
						"and a logical flow for attendees.",
				},
				{
					Name: "SchedulePlanner",
					Role: "Schedule Planner",
					Goal: "Arrange sessions into a practical 3-day timetable, balancing keynotes, " +
						"talks, breaks, and networking slots.",
					Backstory: "You are experienced in agenda planning. You avoid overloading any day, " +
						"make sure breaks are reasonable, and space popular sessions to avoid conflicts.",
				},
				{
					Name: "LogisticsReviewer",
					Role: "Logistics & Risk Reviewer",
					Goal: "Review the proposed agenda for conflicts and logistical issues, and " +
						"suggest improvements.",
					Backstory: "You think like an operations manager. You spot problems such as " +
						"double-booked rooms, back-to-back intense sessions, or accessibility " +
						"issues, and propose practical fixes.",
				},
			},
			Tasks: []CrewTaskConfig{
				{
					Agent: "ProgramChair",
					Description: "Define the high-level structure of a 3-day conference on '{topic}'. " +
						"Clarify the primary audience, main goals, and propose 3–4 tracks " +
						"(e.g., technical, applications, ethics, workshops).",
					ExpectedOutput: "A short document with: (1) conference goals, (2) target audience, " +
						"(3) 3–4 named tracks with 1–2 sentences describing each.",
				},
				{
					Agent: "TrackDesigner",
					Description: "Based on the defined tracks and goals, design 6–8 sessions per day " +
						"for a 3-day conference. For each session, provide a title, 2–3 bullet " +
						"points on content, and which track it belongs to.",
					ExpectedOutput: "A list of proposed sessions grouped by track, with titles and brief descriptions.",
				},
				{
					Agent: "SchedulePlanner",
					Description: "Convert the proposed sessions into a concrete 3-day agenda. " +
						"Assume each day runs roughly 9:00–17:30 with a keynote, " +
						"two morning sessions, lunch, two afternoon sessions, and an optional " +
						"evening event. Assign sessions to time slots and mention where parallel " +
						"tracks exist.",
					ExpectedOutput: "A day-by-day agenda (Day 1, Day 2, Day 3) with time slots, session titles, " +
						"and indications of parallel tracks when applicable.",
				},
				{
					Agent: "LogisticsReviewer",
					Description: "Review the 3-day agenda for issues such as too many parallel sessions, " +
						"insufficient breaks, or clustering similar content. Suggest concrete " +
						"improvements and provide a final, adjusted agenda.",
					ExpectedOutput: "A short critique of the agenda highlighting problems, followed by " +
						"an improved agenda layout.",
				},
			},
		},
	}
}

func initBuiltinInstructions() map[string]string {
	return map[string]string{
		"literature": "Write a concise literature review for this topic. " +
			"Mention 3–5 key themes or directions and typical methods used.",
		"gaps": "Based on the literature review, identify gaps or open problems. " +
			"Propose 2–3 concrete research questions or hypotheses that a new paper could address.",
		"outline": "Design a detailed outline for a full research paper on this topic, " +
			"grounded in the research questions above. Use standard sections " +
			"(Introduction, Related Work, Method, Experiments, Results/Discussion, Conclusion) " +
			"with bullet points under each.",
		"review": "Critically review the proposed outline. Point out strengths, weaknesses, " +
			"and any missing parts. Then provide an improved, final outline.",
	}
}
