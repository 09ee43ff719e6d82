package assistant

// idSchema: id может прийти числом или строкой.
func idSchema(desc string) map[string]any {
	return map[string]any{
		"oneOf":       []any{map[string]any{"type": "integer"}, map[string]any{"type": "string"}},
		"description": desc,
	}
}

func anyOfRequired(keys ...string) []any {
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string]any{"required": []string{k}})
	}
	return out
}

func function(name, desc string, params map[string]any) Tool {
	params["type"] = "object"
	params["additionalProperties"] = false
	return Tool{Type: "function", Function: ToolFunction{Name: name, Description: desc, Parameters: params}}
}

var statusSchema = map[string]any{
	"type":        "string",
	"enum":        []string{"ACTIVE", "CLOSED"},
	"description": "optional account status filter",
}

// Catalogue: инструменты, доступные модели.
func Catalogue() []Tool {
	return []Tool{
		function(ToolFindCustomer,
			"Finds customers by id, national id (TCKN), name, e-mail or phone. National id and phone are returned masked.",
			map[string]any{
				"properties": map[string]any{
					"id":          idSchema("customers.id"),
					"national_id": map[string]any{"type": "string", "pattern": `^\d{11}$`, "description": "11-digit national id"},
					"name":        map[string]any{"type": "string", "minLength": 2, "description": "first or last name, partial match"},
					"email":       map[string]any{"type": "string", "format": "email"},
					"phone":       map[string]any{"type": "string", "pattern": `^\+?\d{10,15}$`, "description": "05XXXXXXXXX or +90..."},
					"limit":       map[string]any{"type": "integer", "minimum": 1, "maximum": 100, "default": 10},
				},
				"anyOf": anyOfRequired("id", "national_id", "name", "email", "phone"),
			}),
		function(ToolListAccountsByCustomer,
			"Lists the accounts of a customer, newest first.",
			map[string]any{
				"properties": map[string]any{
					"customer_id": idSchema("customers.id"),
					"status":      statusSchema,
				},
				"required": []string{"customer_id"},
			}),
		function(ToolAccountOverview,
			"Returns an account summary with its branch and owner by account id or account number.",
			map[string]any{
				"properties": map[string]any{
					"account_id": idSchema("accounts.id"),
					"account_no": map[string]any{"type": "string", "description": "accounts.account_no"},
				},
				"anyOf": anyOfRequired("account_id", "account_no"),
			}),
		function(ToolBranchSummary,
			"Returns branch details with account count and total balance by branch id or branch code.",
			map[string]any{
				"properties": map[string]any{
					"branch_id":   idSchema("branches.id"),
					"branch_code": map[string]any{"type": "integer", "description": "branches.code"},
				},
				"anyOf": anyOfRequired("branch_id", "branch_code"),
			}),
		function(ToolFindCustomerAndAccounts,
			"Finds a customer by id or national id and returns it together with its accounts.",
			map[string]any{
				"properties": map[string]any{
					"id":           idSchema("customers.id"),
					"national_id":  map[string]any{"type": "string", "pattern": `^\d{11}$`},
					"status":       statusSchema,
					"max_accounts": map[string]any{"type": "integer", "minimum": 1, "maximum": 100, "default": 20},
				},
				"anyOf": anyOfRequired("id", "national_id"),
			}),
	}
}
