// Package docs embebe la especificación OpenAPI que sirve el middleware de
// swagger, para que el binario no dependa de un archivo en disco al arrancar.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
