package http

// Export for testing
var RegisterStatic = registerStatic
var ErrorHandler = errorHandler
