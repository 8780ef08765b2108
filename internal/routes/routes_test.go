package routes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/Skyenought/expressgen/internal/patcher"
)

func readGolden(t *testing.T, name string) map[string]string {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	files := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = string(f.Data)
	}
	return files
}

func getUserRoute(method, path string) Route {
	return Route{
		Method:         method,
		Path:           path,
		Controller:     "getUserController",
		ControllerPath: "../../../useCases/users/getUser/v1/index",
	}
}

func TestNew(t *testing.T) {
	got := New(getUserRoute("GET", "/:id"))
	assert.Equal(t, readGolden(t, "create.txtar")["want.ts"], got)
	assert.Equal(t, 1, strings.Count(got, "router.get("))
	assert.Equal(t, 1, strings.Count(got, "export default router;"))
	assert.Equal(t, 2, strings.Count(got, "import "))
}

func TestNewGuarded(t *testing.T) {
	got := New(Route{
		Method:         "get",
		Path:           "/:schoolId/users",
		Controller:     "getUserBySchoolIdController",
		ControllerPath: "../../../useCases/users/getUserBySchoolId/v1/index",
		Validation:     "getUserBySchoolIdValidation",
		ValidationPath: "../../../useCases/users/getUserBySchoolId/v1/validation",
		Auth:           AuthJWT,
	})
	assert.Equal(t, readGolden(t, "create_guarded.txtar")["want.ts"], got)
}

func TestUpdateAddsOnlyMissingImports(t *testing.T) {
	files := readGolden(t, "update_validation.txtar")
	r := getUserRoute("POST", "/")
	r.Validation = "getUserValidation"
	r.ValidationPath = "../../../useCases/users/getUser/v1/validation"

	got, report := Update(files["input.ts"], r)
	assert.Equal(t, files["want.ts"], got)
	assert.Equal(t, 1, strings.Count(got, "import { getUserController }"))
	assert.Empty(t, report.Missed())
}

func TestUpdateWithoutNewImports(t *testing.T) {
	files := readGolden(t, "update_validation.txtar")

	got, report := Update(files["input.ts"], getUserRoute("DELETE", "/:id"))
	o, _ := report.Outcome(PieceImports)
	assert.Equal(t, patcher.AlreadyPresent, o)
	assert.Contains(t, got, "});\n\n\nrouter.delete(\"/:id\", (req")
}

func TestUpdateWithoutExport(t *testing.T) {
	in := "const router = express.Router();\n"
	got, report := Update(in, getUserRoute("GET", "/"))
	assert.NotContains(t, got, "router.get(")
	o, _ := report.Outcome(PieceRoute)
	assert.Equal(t, patcher.AnchorNotFound, o)
}

func TestAuthImports(t *testing.T) {
	assert.Equal(t, `import { basicAuth } from "../../middleware/v1/guard/basic.mdiddleware";`, AuthBasic.Import())
	assert.Equal(t, `import { authMiddleware } from "../../middleware/v1/guard/jwt.middleware";`, AuthCombined.Import())
	assert.Empty(t, AuthNone.Import())
}

func TestHandlerMiddlewareOrder(t *testing.T) {
	r := getUserRoute("PATCH", "/:id")
	r.Auth = AuthBasic
	r.Validation = "getUserValidation"
	assert.True(t, strings.HasPrefix(r.Handler(), `router.patch("/:id", basicAuth, getUserValidation, validatorError, (req`))
}

func TestCreateOrUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api", "routes", "v1", "users.router.ts")

	created, _, err := CreateOrUpdate(path, getUserRoute("GET", "/:id"))
	require.NoError(t, err)
	assert.True(t, created)

	r := getUserRoute("POST", "/")
	r.Validation = "getUserValidation"
	r.ValidationPath = "../../../useCases/users/getUser/v1/validation"
	created, report, err := CreateOrUpdate(path, r)
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, report.Changed())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, readGolden(t, "update_validation.txtar")["want.ts"], string(data))
}
