package model

import "time"

// TaskKind is one entry of the fixed category/title taxonomy.
type TaskKind struct {
	Category string `json:"category"`
	Title    string `json:"title"`
}

// Begin starts a new active Task of this kind.
func (k TaskKind) Begin(at time.Time) Task {
	return Task{Start: at, Category: k.Category, Title: k.Title}
}

// DefaultTask is what a new day starts with.
var DefaultTask = TaskKind{Category: "休憩", Title: "休憩"}

var taskKinds = []TaskKind{
	{"会議", "定例"},
	{"会議", "臨時"},
	{"作業", "特許"},
	{"作業", "プログラミング"},
	{"作業", "計測・データ処理"},
	{"作業", "資料作成"},
	{"雑務", "情報収集"},
	{"雑務", "雑務"},
	{"その他", "勉強"},
	{"その他", "雑談"},
	DefaultTask,
}

// TaskKinds returns the selectable (category, title) pairs in display order.
func TaskKinds() []TaskKind {
	return append([]TaskKind(nil), taskKinds...)
}

// TaskKindAt returns the pair at index i of TaskKinds.
func TaskKindAt(i int) (TaskKind, bool) {
	if i < 0 || i >= len(taskKinds) {
		return TaskKind{}, false
	}
	return taskKinds[i], true
}

// IsKnownTaskKind reports whether (category, title) is part of the taxonomy.
func IsKnownTaskKind(category, title string) bool {
	for _, k := range taskKinds {
		if k.Category == category && k.Title == title {
			return true
		}
	}
	return false
}
