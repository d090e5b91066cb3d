package batch

import "github.com/edumate/autograder/internal/grading"

// Question is the collaborator-supplied view of one question: reference
// prose plus its marking scheme.
type Question struct {
	ID            string         `json:"id"`
	Text          string         `json:"question"`
	SampleAnswer  string         `json:"sample_answer"`
	MarkingScheme []grading.Rule `json:"marking_scheme"`
}

// Submission is one student's raw answer to one question.
type Submission struct {
	StudentName   string `json:"student_name"`
	StudentRollNo string `json:"student_roll_no"`
	QuestionID    string `json:"question_id"`
	Answer        string `json:"student_ans"`
}

// StudentResult is the per-(student, question) grading record handed back
// to the collaborator. Percent is preformatted here; the core's score
// stays fractional.
type StudentResult struct {
	StudentName   string   `json:"student_name"`
	StudentRollNo string   `json:"student_roll_no"`
	StudentAnswer string   `json:"student_answer"`
	QuestionID    string   `json:"question_id"`
	Score         float64  `json:"score"`
	Percent       string   `json:"correct_percent"`
	Grade         string   `json:"grade"`
	MatchedRules  []string `json:"matched_rules"`
	MissedRules   []string `json:"missed_rules"`
}

// Summary counts how a batch went; one pair's failure never aborts the
// rest.
type Summary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

// Test groups questions for multi-question grading.
type Test struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	QuestionIDs []string `json:"question_ids"`
}

// TestSubmission carries one student's answers for a whole test, keyed by
// question ID.
type TestSubmission struct {
	StudentName     string            `json:"student_name"`
	StudentRollNo   string            `json:"student_roll_no"`
	QuestionAnswers map[string]string `json:"question_answers"`
}

// QuestionDetail is the per-question feedback inside a test result.
type QuestionDetail struct {
	QuestionID   string   `json:"question_id"`
	Score        float64  `json:"score"`
	Grade        string   `json:"grade"`
	MatchedRules []string `json:"matched_rules"`
	MissedRules  []string `json:"missed_rules"`
}

// TestResult is one student's graded test: overall score is the mean of
// question scores, overall grade comes from the same threshold table.
type TestResult struct {
	TestID            string           `json:"test_id"`
	StudentName       string           `json:"student_name"`
	StudentRollNo     string           `json:"student_roll_no"`
	OverallScore      float64          `json:"overall_score"`
	OverallPercent    string           `json:"overall_percentage"`
	OverallGrade      string           `json:"overall_grade"`
	QuestionScores    []float64        `json:"question_scores"`
	QuestionGrades    []string         `json:"question_grades"`
	QuestionDetails   []QuestionDetail `json:"question_details"`
	TotalQuestions    int              `json:"total_questions"`
	AnsweredQuestions int              `json:"answered_questions"`
}

// QuestionStat aggregates one question's performance across students.
type QuestionStat struct {
	AvgScore   float64   `json:"avg_score"`
	AvgPercent float64   `json:"avg_percentage"`
	Scores     []float64 `json:"-"`
}

// TestStats summarizes a graded test across all students.
type TestStats struct {
	TotalStudents     int                     `json:"total_students"`
	AverageScore      float64                 `json:"average_score"`
	AveragePercent    float64                 `json:"average_percentage"`
	MaxScore          float64                 `json:"max_score"`
	MinScore          float64                 `json:"min_score"`
	GradeDistribution map[string]int          `json:"grade_distribution"`
	QuestionStats     map[string]QuestionStat `json:"question_statistics"`
}
