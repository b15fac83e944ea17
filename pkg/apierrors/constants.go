package apierrors

const (
	MsgAuthRequired       = "authRequired"
	MsgInvalidUserHeader  = "invalidUserHeader"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskFilter  = "invalidTaskFilter"
	MsgInvalidDateRange   = "invalidDateRange"
	MsgEmptyTaskPatch     = "emptyTaskPatch"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskForbidden      = "taskForbidden"
	MsgNoRestorableTask   = "noRestorableTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTask       = "errorListTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailBatchDelete    = "failBatchDelete"
	MsgFailRestoreTask    = "failRestoreTask"

	MsgInvalidSignupPayload       = "invalidSignupPayload"
	MsgDuplicateUser              = "duplicateUser"
	MsgInvalidCredentials         = "invalidCredentials"
	MsgFailSignup                 = "failSignup"
	MsgFailLogin                  = "failLogin"
	MsgInvalidSubscriptionPayload = "invalidSubscriptionPayload"
	MsgFailSubscribe              = "failSubscribe"
	MsgFailUnsubscribe            = "failUnsubscribe"
)
