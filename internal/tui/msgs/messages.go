// Package msgs defines shared message types for TUI view transitions.
package msgs

// View transition messages

// GoToHomeMsg signals transition to the home view.
type GoToHomeMsg struct{}

// GoToAddTaskMsg signals transition to the add-task form.
type GoToAddTaskMsg struct{}

// GoToTaskListMsg signals transition to the task list.
type GoToTaskListMsg struct{}

// GoToAnalyticsMsg signals transition to the analytics charts.
type GoToAnalyticsMsg struct{}

// GoToPredictMsg signals transition to the prediction form. Entering it retrains the model.
type GoToPredictMsg struct{}

// Result messages

// TaskAddedMsg is sent after the add-task form has been submitted.
type TaskAddedMsg struct {
	Name string
	Err  error
}

// TaskMarkedDoneMsg is sent after a mark-done action.
type TaskMarkedDoneMsg struct {
	Index int
	Err   error
}

// PredictionMsg carries the classifier's verdict for a (day, type) pair.
type PredictionMsg struct {
	Day        string
	Type       string
	Productive bool
	Err        error
}
