package report

// projectSchema is the JSON schema of `xcrun xccov view --report --json` output.
// Only the fields the tool reads are required; extra fields are ignored.
const projectSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "xccov project coverage report",
  "type": "object",
  "required": ["coveredLines", "executableLines", "lineCoverage", "targets"],
  "properties": {
    "coveredLines": {"type": "integer"},
    "executableLines": {"type": "integer"},
    "lineCoverage": {"type": "number"},
    "targets": {"type": "array", "items": {"$ref": "#/definitions/target"}}
  },
  "definitions": {
    "target": {
      "type": "object",
      "required": ["coveredLines", "executableLines", "lineCoverage", "name", "buildProductPath", "files"],
      "properties": {
        "coveredLines": {"type": "integer"},
        "executableLines": {"type": "integer"},
        "lineCoverage": {"type": "number"},
        "name": {"type": "string"},
        "buildProductPath": {"type": "string"},
        "files": {"type": "array", "items": {"$ref": "#/definitions/file"}}
      }
    },
    "file": {
      "type": "object",
      "required": ["coveredLines", "executableLines", "lineCoverage", "name", "path", "functions"],
      "properties": {
        "coveredLines": {"type": "integer"},
        "executableLines": {"type": "integer"},
        "lineCoverage": {"type": "number"},
        "name": {"type": "string"},
        "path": {"type": "string"},
        "functions": {"type": "array", "items": {"$ref": "#/definitions/function"}}
      }
    },
    "function": {
      "type": "object",
      "required": ["coveredLines", "executableLines", "lineCoverage", "name", "lineNumber", "executionCount"],
      "properties": {
        "coveredLines": {"type": "integer"},
        "executableLines": {"type": "integer"},
        "lineCoverage": {"type": "number"},
        "name": {"type": "string"},
        "lineNumber": {"type": "integer"},
        "executionCount": {"type": "integer"}
      }
    }
  }
}`
