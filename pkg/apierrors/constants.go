package apierrors

const (
	MsgFailListTask   = "errorListTask"
	MsgFailCreateTask = "failCreateTask"
	MsgFailUpdateTask = "failUpdateTask"
	MsgFailDeleteTask = "failDeleteTask"
)
