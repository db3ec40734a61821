package entity

// ImportReport итог загрузки каталога.
type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportOutcome результат приёма файла каталога: либо загрузка
// выполнена сразу и есть Report, либо поставлена задача TaskID.
type ImportOutcome struct {
	Queued bool         `json:"queued"`
	TaskID string       `json:"task_id,omitempty"`
	Report ImportReport `json:"report"`
}
