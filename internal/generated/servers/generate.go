package servers

// types.go and server.go are regenerated from openapi.yaml; spec.go is maintained by hand.

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config types.cfg.yaml openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config server.cfg.yaml openapi.yaml
