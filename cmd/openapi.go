package main

import (
	"encoding/json"
	"net/http"
)

type jsonObject = map[string]interface{}

func stringProps(names ...string) jsonObject {
	props := jsonObject{}
	for _, n := range names {
		props[n] = jsonObject{"type": "string"}
	}
	return props
}

func dateProp() jsonObject {
	return jsonObject{"type": "string", "format": "date"}
}

func ref(name string) jsonObject {
	return jsonObject{"$ref": "#/components/schemas/" + name}
}

func jsonResponse(description string, schema jsonObject) jsonObject {
	return jsonObject{
		"description": description,
		"content":     jsonObject{"application/json": jsonObject{"schema": schema}},
	}
}

var bikeTextFields = []string{
	"brand_name", "name", "model_name", "registration_number", "kilometers_driven",
	"color", "model_year", "description", "city", "location",
	"availability", "price_per_day", "price_per_month", "category",
}

func openAPIDocument() jsonObject {
	bikeUpdate := stringProps(bikeTextFields...)
	bikeUpdate["created_at"] = dateProp()
	bikeUpdate["purchase_date"] = dateProp()

	bike := stringProps(append([]string{"bikeId"}, bikeTextFields...)...)
	bike["created_at"] = jsonObject{"type": "string", "format": "date", "nullable": true}
	bike["purchase_date"] = dateProp()

	rental := stringProps("name", "number", "bike_name")
	rental["from_date"] = dateProp()
	rental["to_date"] = dateProp()

	validationError := jsonResponse("Validation Error", ref("HTTPValidationError"))

	return jsonObject{
		"openapi": "3.0.3",
		"info":    jsonObject{"title": "vizigo", "version": "1.0"},
		"paths": jsonObject{
			"/update_bike/": jsonObject{
				"post": jsonObject{
					"summary":     "Create a bike listing",
					"operationId": "update_bike",
					"requestBody": jsonObject{
						"required": true,
						"content":  jsonObject{"application/json": jsonObject{"schema": ref("BikeUpdate")}},
					},
					"responses": jsonObject{
						"200": jsonResponse("Successful Response", ref("CreateBikeResponse")),
						"422": validationError,
					},
				},
			},
			"/rental/": jsonObject{
				"post": jsonObject{
					"summary":     "Create a rental request",
					"operationId": "create_rental",
					"requestBody": jsonObject{
						"required": true,
						"content":  jsonObject{"application/json": jsonObject{"schema": ref("RentalRequest")}},
					},
					"responses": jsonObject{
						"200": jsonResponse("Successful Response", ref("CreateRentalResponse")),
						"422": validationError,
					},
				},
			},
			"/bikes": jsonObject{
				"get": jsonObject{
					"summary":     "List all bike listings",
					"operationId": "get_bike_details",
					"responses": jsonObject{
						"200": jsonResponse("Successful Response", jsonObject{"type": "array", "items": ref("Bike")}),
						"500": jsonResponse("Store Error", ref("HTTPError")),
					},
				},
			},
		},
		"components": jsonObject{
			"schemas": jsonObject{
				"BikeUpdate": jsonObject{
					"type":       "object",
					"required":   append(append([]string{}, bikeTextFields...), "purchase_date"),
					"properties": bikeUpdate,
				},
				"Bike": jsonObject{"type": "object", "properties": bike},
				"RentalRequest": jsonObject{
					"type":       "object",
					"required":   []string{"name", "number", "bike_name", "from_date", "to_date"},
					"properties": rental,
				},
				"CreateBikeResponse":   jsonObject{"type": "object", "properties": stringProps("message", "bike_id")},
				"CreateRentalResponse": jsonObject{"type": "object", "properties": stringProps("message", "rental_id")},
				"HTTPError":            jsonObject{"type": "object", "properties": stringProps("detail")},
				"HTTPValidationError": jsonObject{
					"type": "object",
					"properties": jsonObject{
						"detail": jsonObject{"type": "array", "items": ref("ValidationError")},
					},
				},
				"ValidationError": jsonObject{
					"type":     "object",
					"required": []string{"loc", "msg", "type"},
					"properties": jsonObject{
						"loc":  jsonObject{"type": "array", "items": jsonObject{"type": "string"}},
						"msg":  jsonObject{"type": "string"},
						"type": jsonObject{"type": "string"},
					},
				},
			},
		},
	}
}

func (app *application) openAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(openAPIDocument()); err != nil {
		app.errorLog.Printf("write openapi document: %v", err)
	}
}
