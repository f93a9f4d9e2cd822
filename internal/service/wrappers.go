package service

// DiaryServiceWrapper defines middleware composition for DiaryService.
// Implementations wrap an existing DiaryService to add behavior such as
// logging or validating.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService
}

// ReportServiceWrapper is the ReportService counterpart of DiaryServiceWrapper.
type ReportServiceWrapper interface {
	Wrap(ReportService) ReportService
}
