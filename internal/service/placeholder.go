package service

import "github.com/studenthub/examgate/internal/model"

// PlaceholderQuestions is the built-in question set substituted when the
// question fetch fails at session start. An exam is a time-boxed activity, so
// showing something beats showing nothing; the session is marked so the UI
// can tell the user it is not the real paper.
func PlaceholderQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Content: "Quyền bình đẳng của công dân trong lao động được thể hiện ở việc mọi công dân đều có quyền?"},
		{ID: "q2", Content: "Nội dung nào dưới đây không phải là bình đẳng trong hôn nhân và gia đình?"},
		{ID: "q3", Content: "Hành vi nào dưới đây vi phạm quyền bình đẳng của công dân trước pháp luật?"},
		{ID: "q4", Content: "Quyền bình đẳng giữa các dân tộc được hiểu là các dân tộc trong cộng đồng dân cư Việt Nam có quyền dùng tiếng nói, chữ viết của dân tộc mình là thể hiện quyền bình đẳng về?"},
		{ID: "q5", Content: "Công dân bình đẳng về trách nhiệm pháp lí là?"},
	}
}
