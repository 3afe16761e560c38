package service

import "time"

// Export for testing
var SanitizeHistory = sanitizeHistory
var Truncate = truncate
var NormalizeUnsubscribe = normalizeUnsubscribe

func SetNowForTest(s SubmissionService, now func() time.Time) {
	s.(*submissionService).now = now
}
