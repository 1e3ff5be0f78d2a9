package service

import "text/template"

// Prompt templates for the generative collaborator. Each one ends with the exact
// JSON shape the response decoder expects.

var jobDescriptionPrompt = template.Must(template.New("jobDescription").Parse(`You are an expert HR specialist crafting compelling job descriptions.

Generate a detailed and realistic job description for the following role:

Job Title: {{.JobTitle}}
{{- if .Seniority}}
Seniority Level: {{.Seniority}}
{{- end}}

Instructions:
1. Create a comprehensive job description suitable for posting on a job board.
2. Include sections for: Company Overview (a generic placeholder such as "[Company Name] is a leading innovator..."), Role Summary, Key Responsibilities (bullet points), Required Qualifications (bullet points), Preferred Qualifications/Skills (bullet points) and What We Offer (placeholder benefits).
3. Tailor responsibilities and qualifications to the job title and seniority level. Senior roles emphasize leadership, strategy and complex problem-solving; junior roles focus on learning, execution and collaboration.
4. The description must be at least 100 words long and professionally written.
5. Do not include conversational text or apologies.

Respond with JSON only, exactly in this shape:
{"job_description": "<the full job description text>"}
`))

var extractSkillsPrompt = template.Must(template.New("extractSkills").Parse(`You are an expert recruitment consultant specializing in technical roles. Analyze the provided job description and extract the key skills, competencies, and knowledge areas required for the role.

Job Description:
{{.JobDescription}}

Instructions:
1. Identify both explicit and implicit skill requirements.
2. Categorize each skill as "technical", "soft", "domain-specific", "tooling", or "other".
3. Assess the importance of each skill as "critical", "important", or "nice-to-have" based on the emphasis in the description.
4. Provide a brief context or example for each skill if possible.
5. Do not include generic requirements like "Bachelor's degree". Limit the list to the 15-20 most relevant skills.

Respond with JSON only, exactly in this shape:
{"extracted_skills": [{"name": "...", "category": "technical", "importance": "critical", "context": "..."}]}
`))

var createTestPrompt = template.Must(template.New("createTest").Parse(`You are an expert assessment creator for technical and professional roles. Based on the provided job details and extracted skills, generate a tailored skill assessment test.

Job Title: {{.JobTitle}}
Seniority: {{.Seniority}}
Job Description:
{{.JobDescription}}

Extracted Skills:
{{- range .Skills}}
- {{.Name}} ({{.Category}}, Importance: {{.Importance}}){{if .Context}} Context: {{.Context}}{{end}}
{{- end}}

Assessment Parameters:
- Generate exactly {{.NumberOfQuestions}} questions.
{{- if .AssessmentFocus}}
- Prioritize questions focusing on: {{range $i, $f := .AssessmentFocus}}{{if $i}}, {{end}}{{$f}}{{end}}.
{{- end}}
- Mix question types relevant to the skills: "multiple-choice" for knowledge checks, "free-form" for problem-solving or conceptual understanding, and optionally "coding-challenge" when the role writes code.
- Calibrate question difficulty to the "{{.Seniority}}" seniority level.
- Number questions q1, q2, ... and options q1o1, q1o2, ...
- Multiple-choice questions have 3-5 distinct, plausible options with exactly one marked "is_correct": true. Free-form and coding-challenge questions have no options.
- Question text is concise, unambiguous and at least 10 characters long.
- Assign a skill category and a difficulty ("easy", "medium" or "hard") to every question.
- Generate a suitable overall test title.

Respond with JSON only, exactly in this shape:
{"test_title": "...", "questions": [{"id": "q1", "type": "multiple-choice", "text": "...", "options": [{"id": "q1o1", "text": "...", "is_correct": true}], "skill_category": "...", "difficulty": "medium", "explanation": "...", "language": "", "starter_code": "", "solution": ""}]}
`))

var problemSolvingPrompt = template.Must(template.New("problemSolving").Parse(`You are an expert technical recruiter analyzing a candidate's answer to assess their problem-solving skills.

Job Requirements: {{.JobRequirements}}

Analyze the following answer, providing insights into their problem-solving approach, efficiency, and areas for improvement.

Answer: {{.Answer}}

Respond with JSON only, exactly in this shape:
{"problem_solving_approach": "<detailed analysis of the approach>", "efficiency_assessment": "<assessment of efficiency>", "areas_for_improvement": "<suggestions for improvement>"}
`))

var codeQualityPrompt = template.Must(template.New("codeQuality").Parse(`You are an expert code reviewer and senior software engineer. Analyze the following code snippet written in {{.Language}}.
{{- if .ProblemDescription}}

Problem Description:
{{.ProblemDescription}}
{{- end}}
{{- if .JobRequirements}}

Relevant Job Requirements/Standards:
{{.JobRequirements}}
{{- end}}

Code Snippet:
` + "```" + `{{.Language}}
{{.CodeSnippet}}
` + "```" + `

Evaluate the code on:
1. Functionality: does it appear to solve the problem? Comment on likely correctness.
2. Readability and clarity: naming, comments, formatting. Score from 0 (unreadable) to 10 (excellent).
3. Maintainability: modularity, complexity, ease of change. Score from 0 (unmaintainable) to 10 (excellent).
4. Efficiency: obvious time or space complexity issues.
5. Best practices: language conventions, error handling, idiomatic use of language features.
6. Security: obvious vulnerabilities such as injection risks, hardcoded secrets or missing input validation.
7. Suggestions: specific, actionable improvements.
8. Summary: a concise overall summary of the code quality.
Be objective and constructive.

Respond with JSON only, exactly in this shape:
{"functionality_assessment": "...", "readability_score": 7, "maintainability_score": 6, "efficiency_assessment": "...", "best_practices_adherence": "...", "security_vulnerabilities": ["..."], "suggestions_for_improvement": ["..."], "overall_quality_summary": "..."}
`))
