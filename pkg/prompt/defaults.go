package prompt

// DefaultTemplates returns the seed templates registered on first start.
// Content mirrors the standard prompt-engineering templates the service has
// always shipped with.
func DefaultTemplates() []*Template {
	return []*Template{
		{
			Name:        "business_logic_implementation",
			Description: "Standard template for implementing business logic",
			Category:    "development",
			Content: `You are an expert software developer implementing business logic for {{business_domain}}.

Requirements:
{{requirements}}

Constraints:
{{constraints}}

Please provide the implementation following these guidelines:
1. Use clean, maintainable code
2. Include proper error handling
3. Add comprehensive documentation
4. Follow best practices for {{business_domain}}

Output the code in the following format:
{{output_format}}`,
			Variables: []string{"business_domain", "requirements", "constraints", "output_format"},
		},
		{
			Name:        "api_design",
			Description: "Standard template for REST API design",
			Category:    "architecture",
			Content: `Design a REST API for {{resource_name}} with the following requirements:

Operations needed: {{operations}}
Data structure: {{data_structure}}
Authentication: {{authentication}}

Please provide:
1. API endpoint specifications
2. Request/Response examples
3. Data models
4. Error handling strategy
5. Security considerations

Format the response as a comprehensive API design document.`,
			Variables: []string{"resource_name", "operations", "data_structure", "authentication"},
		},
		{
			Name:        "database_schema_design",
			Description: "Standard template for database schema design",
			Category:    "data",
			Content: `Design a database schema for {{entity_name}} with the following requirements:

Relationships: {{relationships}}
Constraints: {{constraints}}
Performance requirements: {{indexes}}

Please provide:
1. Table/entity definitions
2. Field specifications with types and constraints
3. Relationship mappings
4. Index recommendations
5. Migration strategy

Format as a database design document with SQL examples.`,
			Variables: []string{"entity_name", "relationships", "constraints", "indexes"},
		},
		{
			Name:        "advanced_reasoning_chain",
			Description: "Multi-step reasoning template for complex problems",
			Category:    "reasoning",
			Content: `Problem: {{problem_statement}}

Work through this step by step:
1. Restate the problem in your own words
2. Identify the known facts and constraints
3. Break the problem into sub-problems
4. Solve each sub-problem, showing your reasoning
5. Combine the partial results into a final answer

Context: {{context}}

Present the final answer in this format: {{output_format}}`,
			Variables: []string{"problem_statement", "context", "output_format"},
		},
		{
			Name:        "comprehensive_testing_strategy",
			Description: "Template for designing a testing strategy",
			Category:    "quality",
			Content: `Design a testing strategy for {{component_name}}.

Behavior under test: {{behavior}}
Risks: {{risks}}

Cover:
1. Unit test cases with edge conditions
2. Integration test scenarios
3. Failure-mode and recovery tests
4. Test data requirements`,
			Variables: []string{"component_name", "behavior", "risks"},
		},
	}
}
