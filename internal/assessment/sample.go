package assessment

// SampleTestID is the public id of the built-in demo test.
const SampleTestID = "sample"

// SampleTest returns a fresh copy of the demo test served at /tests/sample.
func SampleTest() Test {
	return Test{
		ID:    SampleTestID,
		Title: "Sample Web Development Basics Test",
		Questions: []Question{
			{
				ID:   "q1",
				Type: TypeMultipleChoice,
				Text: "What does HTML stand for?",
				Options: []Option{
					{ID: "q1o1", Text: "HyperText Markup Language", IsCorrect: true},
					{ID: "q1o2", Text: "Hyperlinks and Text Markup Language"},
					{ID: "q1o3", Text: "Home Tool Markup Language"},
				},
			},
			{
				ID:   "q2",
				Type: TypeMultipleChoice,
				Text: "Which property is used in CSS to change the text color of an element?",
				Options: []Option{
					{ID: "q2o1", Text: "font-color"},
					{ID: "q2o2", Text: "text-color"},
					{ID: "q2o3", Text: "color", IsCorrect: true},
					{ID: "q2o4", Text: "font-style"},
				},
			},
			{
				ID:   "q3",
				Type: TypeFreeForm,
				Text: "Describe the difference between `let`, `const`, and `var` in JavaScript.",
			},
			{
				ID:   "q4",
				Type: TypeMultipleChoice,
				Text: "What is the purpose of a `<div>` tag in HTML?",
				Options: []Option{
					{ID: "q4o1", Text: "To define a hyperlink"},
					{ID: "q4o2", Text: "To create a division or a section", IsCorrect: true},
					{ID: "q4o3", Text: "To display an image"},
					{ID: "q4o4", Text: "To format text as bold"},
				},
			},
		},
	}
}
