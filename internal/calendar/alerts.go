package calendar

import "github.com/terraincognita07/moodlog/internal/client"

// Alert is a blocking user-facing message. Key names the message in the locale
// files; Title and Message are the Korean defaults. Detail carries the server's
// own explanation when it sent one.
type Alert struct {
	Key     string
	Title   string
	Message string
	Detail  string
	Err     error
}

type Alerter interface {
	Alert(alert Alert)
}

// AlerterFunc adapts a plain function to Alerter.
type AlerterFunc func(Alert)

func (fn AlerterFunc) Alert(alert Alert) {
	fn(alert)
}

type discardAlerter struct{}

func (discardAlerter) Alert(Alert) {}

type alertKind struct {
	key     string
	title   string
	message string
}

var (
	alertLoadFailed    = alertKind{key: "calendar.load_failed", title: "오류", message: "캘린더 데이터를 불러오지 못했습니다."}
	alertMissingUserID = alertKind{key: "calendar.missing_user", title: "로그인 필요", message: "userId가 없습니다"}
	alertMissingDate   = alertKind{key: "calendar.missing_date", title: "입력 오류", message: "날짜를 선택하세요."}
	alertSaveFailed    = alertKind{key: "calendar.save_failed", title: "저장 실패", message: "감정 기록을 저장하지 못했습니다."}
	alertCommentFailed = alertKind{key: "calendar.comment_failed", title: "수정 실패", message: "코멘트를 수정하지 못했습니다."}
	alertDeleteFailed  = alertKind{key: "calendar.delete_failed", title: "삭제 실패", message: "감정 기록을 삭제하지 못했습니다."}
)

func (kind alertKind) alert(err error) Alert {
	return Alert{
		Key:     kind.key,
		Title:   kind.title,
		Message: kind.message,
		Detail:  client.UserMessage(err, ""),
		Err:     err,
	}
}
