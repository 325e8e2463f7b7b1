package apierrors

const (
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgTaskAccessDenied      = "taskAccessDenied"
	MsgTaskSelfParent        = "taskSelfParent"
	MsgUnfinishedSubtasks    = "unfinishedSubtasks"
	MsgCannotDeleteCompleted = "cannotDeleteCompleted"
	MsgFailListTask          = "errorListTask"
	MsgFailFetchTask         = "failFetchTask"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailCompleteTask      = "failCompleteTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgMissingCredentials    = "missingCredentials"
	MsgEmailTaken            = "emailTaken"
	MsgInvalidCredentials    = "invalidCredentials"
	MsgFailRegister          = "failRegister"
	MsgFailLogin             = "failLogin"
	MsgUnauthorized          = "unauthorized"
)
