package templates

import (
	"strings"
	"testing"

	"github.com/Skyenought/expressgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustModel(t *testing.T, src, name string) schema.Model {
	t.Helper()
	m, err := schema.Parse(src).Find(name)
	require.NoError(t, err)
	return m
}

func TestEntityWithGeneratedID(t *testing.T) {
	model := mustModel(t, `
model Order {
  id    String @id @default(uuid())
  total Float
}`, "Order")

	out, err := Entity(model)
	require.NoError(t, err)

	assert.Contains(t, out, `import { Order as IOrderEntity } from "@prisma/client";`)
	assert.Contains(t, out, `import { v4 as uuidV4 } from "uuid";`)
	assert.Contains(t, out, "    public readonly id!: string;")
	assert.Contains(t, out, "    public total!: number;")
	assert.Contains(t, out, `constructor(props: Omit<IOrderEntity, "id">, id?: string)`)
	assert.Contains(t, out, "this.id = id ?? uuidV4();")
}

func TestEntityOmitsTimestampsAndNullsOptionals(t *testing.T) {
	model := mustModel(t, `
model User {
  id         Int      @id
  email      String   @unique
  nickname   String?
  created_at DateTime @default(now())
  updated_at DateTime @default(now())
}`, "User")

	out, err := Entity(model)
	require.NoError(t, err)

	assert.NotContains(t, out, "uuid")
	assert.Contains(t, out, "    public nickname!: string | null;")
	assert.Contains(t, out, `Omit<IUserEntity, "id" | "created_at" | "updated_at">, id?: number`)
	assert.Contains(t, out, "if (id) {\n            this.id = id;\n        }")
}

func TestEntityWithoutID(t *testing.T) {
	model := mustModel(t, "model Tag {\n  label String\n}", "Tag")

	out, err := Entity(model)
	require.NoError(t, err)
	assert.Contains(t, out, "constructor(props: ITagEntity) {\n        Object.assign(this, props);\n    }")
}

func TestRepositoryImplementationAlwaysDisconnects(t *testing.T) {
	out, err := RepositoryImplementation("User", "user")
	require.NoError(t, err)

	assert.Contains(t, out, "export class PostgresUserRepository implements IUserRepository")
	for _, op := range []string{"create", "findUnique", "update", "delete"} {
		assert.Contains(t, out, "prisma.user."+op+"(")
	}
	assert.Equal(t, 4, strings.Count(out, "await prisma.$disconnect();"))
	assert.Equal(t, 4, strings.Count(out, "} finally {"))
	assert.Equal(t, 4, strings.Count(out, rethrow))
}

func TestRepositoryInterface(t *testing.T) {
	out, err := RepositoryInterface("order item")
	require.NoError(t, err)

	assert.Contains(t, out, `import { OrderItemEntity } from "../entities/orderItem.entity";`)
	assert.Contains(t, out, "export interface IOrderItemRepository {")
	assert.Contains(t, out, "findById(id: string): Promise<OrderItemEntity | null>;")
	assert.Contains(t, out, "delete(id: string): Promise<boolean>;")
}

func TestDTO(t *testing.T) {
	out, err := DTO("CreateUser", []InputField{
		{Name: "email", Type: "email"},
		{Name: "birth", Type: "date", Optional: true},
		{Name: "tags", Type: "array"},
		{Name: "age", Type: "number"},
	})
	require.NoError(t, err)
	assert.Equal(t, "export interface ICreateUserDTO {\n"+
		"    email: string;\n"+
		"    birth?: Date;\n"+
		"    tags: any[];\n"+
		"    age: number;\n"+
		"}\n", out)

	empty, err := DTO("Ping", nil)
	require.NoError(t, err)
	assert.Contains(t, empty, "    id?: string;")
}

func TestUseCaseAndIndexCarrySentinels(t *testing.T) {
	uc, err := UseCase("CreateUser", "createUser")
	require.NoError(t, err)
	assert.Contains(t, uc, InjectDependenciesSentinel)
	assert.Contains(t, uc, "constructor() {}")
	assert.Contains(t, uc, "status: 200")

	idx, err := Index("CreateUser", "createUser")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(idx, IndexRepositorySentinel))
	assert.Contains(t, idx, "const createUserUseCase = new CreateUserUseCase();")
	assert.Contains(t, idx, "export { createUserController };")
}

func TestControllerExtractsBySource(t *testing.T) {
	out, err := Controller("GetUser", "getUser", []InputField{
		{Name: "id", Type: "uuid", Source: SourceParam},
		{Name: "page", Type: "number", Source: SourceQuery},
		{Name: "name", Type: "string", Source: SourceBody},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "                id: req.params.id,\n")
	assert.Contains(t, out, "                page: req.query.page,\n")
	assert.Contains(t, out, "                name: req.body.name\n")
	assert.Contains(t, out, "res.status(response.status).json(response);")
	assert.Contains(t, out, "next(error);")
}

func TestValidationChain(t *testing.T) {
	cases := []struct {
		field InputField
		want  string
	}{
		{InputField{Name: "name", Type: "string"}, `body("name").isString().withMessage("name deve ser uma string").notEmpty().withMessage("name é obrigatório")`},
		{InputField{Name: "name", Type: "string", Optional: true}, `body("name").optional().isString().withMessage("name deve ser uma string")`},
		{InputField{Name: "id", Type: "uuid", Source: SourceParam}, `param("id").isUUID().withMessage("id deve ser um UUID válido")`},
		{InputField{Name: "tags", Type: "array"}, `body("tags").isArray().withMessage("tags deve ser um array").notEmpty().withMessage("tags não pode estar vazio")`},
		{InputField{Name: "meta", Type: "any", Source: SourceQuery}, `query("meta").notEmpty().withMessage("meta é obrigatório")`},
		{InputField{Name: "meta", Type: "any", Optional: true}, `body("meta").optional()`},
		{InputField{Name: "active", Type: "boolean"}, `body("active").isBoolean().withMessage("active deve ser um booleano")`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ValidationChain(c.field), c.field.Name)
	}
}

func TestValidationImportsOnlyUsedSources(t *testing.T) {
	out, err := Validation("getUser", []InputField{
		{Name: "id", Type: "uuid", Source: SourceParam},
		{Name: "verbose", Type: "boolean", Source: SourceParam, Optional: true},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `import { param } from "express-validator";`))
	assert.Contains(t, out, "export const getUserValidation = [\n    param(\"id\")")

	empty, err := Validation("ping", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(empty, `import { body, param, query } from "express-validator";`))
	assert.Contains(t, empty, "// TODO: Configure as validações necessárias")
}

func TestParseSource(t *testing.T) {
	assert.Equal(t, SourceParam, ParseSource("PARAM"))
	assert.Equal(t, SourceQuery, ParseSource(" query "))
	assert.Equal(t, SourceBody, ParseSource("header"))
}
