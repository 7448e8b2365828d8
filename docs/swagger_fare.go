package docs

// @title           Ride Fare Aggregator API
// @version         1.0
// @description     Compares ride fares across Uber and Rapido for one trip and keeps a history of the reports.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /

//go:generate swag init --dir ../ --generalInfo docs/swagger_fare.go --output . --outputTypes go --instanceName fare
