package employee

import (
	"context"
	"errors"
	"strconv"

	"go-talent/internal/domain"
	employeeerrors "go-talent/internal/employee/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoDBRepository stores one item per employee keyed by "id". Age is a
// number attribute and skills a string set.
type DynamoDBRepository struct {
	client DynamoDBAPI
	table  string
}

func NewDynamoDBRepository(client DynamoDBAPI, table string) (*DynamoDBRepository, error) {
	if table == "" {
		return nil, errors.New("dynamodb table name is required")
	}
	return &DynamoDBRepository{client: client, table: table}, nil
}

const (
	attrID          = "id"
	attrName        = "name"
	attrAge         = "age"
	attrAffiliation = "affiliation"
	attrPost        = "post"
	attrSkills      = "skills"
)

func (r *DynamoDBRepository) Get(ctx context.Context, id string) (domain.Employee, bool, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{attrID: &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Employee{}, false, employeeerrors.StoreUnavailable(err)
	}
	if len(out.Item) == 0 {
		return domain.Employee{}, false, nil
	}

	emp, err := decodeItem(id, out.Item)
	if err != nil {
		return domain.Employee{}, false, err
	}
	return emp, true, nil
}

func (r *DynamoDBRepository) Scan(ctx context.Context) ([]ScanItem, error) {
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:      aws.String(r.table),
		ConsistentRead: aws.Bool(true),
	})

	var items []ScanItem
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, employeeerrors.StoreUnavailable(err)
		}
		for _, item := range page.Items {
			id := stringAttr(item, attrID)
			emp, err := decodeItem(id, item)
			items = append(items, ScanItem{ID: id, Employee: emp, Err: err})
		}
	}
	if items == nil {
		items = []ScanItem{}
	}
	return items, nil
}

func (r *DynamoDBRepository) Put(ctx context.Context, emp domain.Employee) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      encodeItem(emp),
	})
	if err != nil {
		return employeeerrors.StoreUnavailable(err)
	}
	return nil
}

func encodeItem(e domain.Employee) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		attrID:          &types.AttributeValueMemberS{Value: e.ID},
		attrName:        &types.AttributeValueMemberS{Value: e.Name},
		attrAge:         &types.AttributeValueMemberN{Value: strconv.Itoa(e.Age)},
		attrAffiliation: &types.AttributeValueMemberS{Value: e.Affiliation},
		attrPost:        &types.AttributeValueMemberS{Value: e.Post},
	}
	// String sets may not be empty.
	if skills := uniqueStrings(e.Skills); len(skills) > 0 {
		item[attrSkills] = &types.AttributeValueMemberSS{Value: skills}
	} else {
		item[attrSkills] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	}
	return item
}

func decodeItem(id string, item map[string]types.AttributeValue) (domain.Employee, error) {
	if id == "" {
		return domain.Employee{}, malformed(id, "missing id")
	}

	name, ok := item[attrName].(*types.AttributeValueMemberS)
	if !ok {
		return domain.Employee{}, malformed(id, "missing or non-string name")
	}
	ageAttr, ok := item[attrAge].(*types.AttributeValueMemberN)
	if !ok {
		return domain.Employee{}, malformed(id, "missing or non-numeric age")
	}
	age, err := strconv.Atoi(ageAttr.Value)
	if err != nil {
		return domain.Employee{}, malformed(id, "age is not an integer")
	}
	affiliation, ok := item[attrAffiliation].(*types.AttributeValueMemberS)
	if !ok {
		return domain.Employee{}, malformed(id, "missing or non-string affiliation")
	}
	post, ok := item[attrPost].(*types.AttributeValueMemberS)
	if !ok {
		return domain.Employee{}, malformed(id, "missing or non-string post")
	}
	skills, err := decodeSkills(id, item[attrSkills])
	if err != nil {
		return domain.Employee{}, err
	}

	return domain.Employee{
		ID:          id,
		Name:        name.Value,
		Age:         age,
		Affiliation: affiliation.Value,
		Post:        post.Value,
		Skills:      skills,
	}, nil
}

func decodeSkills(id string, attr types.AttributeValue) ([]string, error) {
	switch v := attr.(type) {
	case *types.AttributeValueMemberSS:
		return append([]string{}, v.Value...), nil
	case *types.AttributeValueMemberL:
		skills := make([]string, 0, len(v.Value))
		for _, el := range v.Value {
			s, ok := el.(*types.AttributeValueMemberS)
			if !ok {
				return nil, malformed(id, "skills list holds a non-string element")
			}
			skills = append(skills, s.Value)
		}
		return skills, nil
	default:
		return nil, malformed(id, "missing skills")
	}
}

func stringAttr(item map[string]types.AttributeValue, key string) string {
	if s, ok := item[key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
