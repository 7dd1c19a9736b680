package constvars

const (
	// Auth messages
	RegisterSuccess = "user created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// User-related messages
	GetProfileSuccessMessage  = "get profile successfully"
	UpdateUserSuccessMessage  = "user updated successfully"
	UploadAvatarSuccess       = "avatar uploaded successfully"
	ListUsersSuccess          = "get users successfully"
	UpdateUserRoleSuccess     = "user role updated successfully"
	GetSessionSuccessMessage  = "get session successfully"

	// Best of Larib messages
	CaseCreatedSuccess          = "case created successfully"
	CaseUpdatedSuccess          = "case updated successfully"
	CaseDeletedSuccess          = "case deleted successfully"
	GetCaseSuccess              = "get case successfully"
	ListCasesSuccess            = "get cases successfully"
	CaseAttachmentUploadSuccess = "case attachment uploaded successfully"
	CaseAttachmentURLSuccess    = "case attachment url generated successfully"

	// Leave messages
	LeaveSubmittedSuccess    = "leave request submitted successfully"
	LeaveApprovedSuccess     = "leave request approved successfully"
	LeaveRejectedSuccess     = "leave request rejected successfully"
	LeaveCancelledSuccess    = "leave request cancelled successfully"
	GetLeaveSuccess          = "get leave request successfully"
	ListLeavesSuccess        = "get leave requests successfully"
	GetLeaveBalanceSuccess   = "get leave balance successfully"
	GetExcludedDaysSuccess   = "get excluded days successfully"
	GetHolidaysSuccess       = "get holidays successfully"
	GetHolidayDatesSuccess   = "get holiday dates successfully"
)
