package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBClient defines the interface needed for PartiQL statements.
type DynamoDBClient interface {
	ExecuteStatement(ctx context.Context, params *dynamodb.ExecuteStatementInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ExecuteStatementOutput, error)
}

// DynamoDBQuerier runs query text as a PartiQL statement.
type DynamoDBQuerier struct {
	Client DynamoDBClient
}

// NewDynamoDBQuerier creates a new querier with the given AWS config.
func NewDynamoDBQuerier(cfg aws.Config) *DynamoDBQuerier {
	return &DynamoDBQuerier{
		Client: dynamodb.NewFromConfig(cfg),
	}
}

// Query follows NextToken until the statement is exhausted. Items have no
// column order, so the columns are the sorted union of attribute names.
func (q *DynamoDBQuerier) Query(ctx context.Context, text string) (*ResultSet, error) {
	input := &dynamodb.ExecuteStatementInput{Statement: aws.String(text)}

	var items []map[string]types.AttributeValue
	for {
		out, err := q.Client.ExecuteStatement(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to execute statement: %w", err)
		}
		items = append(items, out.Items...)
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	var rows []map[string]interface{}
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}

	seen := make(map[string]struct{})
	rs := &ResultSet{}
	for _, row := range rows {
		for k, v := range row {
			row[k] = normalizeValue(v)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				rs.Columns = append(rs.Columns, k)
			}
		}
	}
	sort.Strings(rs.Columns)
	rs.Rows = rows
	return rs, nil
}
