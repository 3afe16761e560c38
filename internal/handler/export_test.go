package handler

// Export for testing
type ChatResponse = chatResponse
type SuccessResponse = successResponse

var NewChatHandlerHelper = NewChatHandler
var NewFormHandlerHelper = NewFormHandler
var NewUnsubscribeHandlerHelper = NewUnsubscribeHandler

var WriteServiceError = writeServiceError
var BindFields = bindFields
var StringField = stringField
