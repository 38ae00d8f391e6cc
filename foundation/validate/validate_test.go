package validate_test

import (
	"testing"

	"github.com/ardanlabs/hashledger/foundation/validate"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

type args struct {
	Count int `flag:"count" validate:"gte=0,lte=100000"`
	Index int `flag:"index" validate:"gte=0,ltfield=Count"`
}

func Test_Check(t *testing.T) {
	type table struct {
		name   string
		val    args
		fields []string
	}

	tt := []table{
		{name: "valid", val: args{Count: 3, Index: 1}},
		{name: "count", val: args{Count: -1, Index: 0}, fields: []string{"count", "index"}},
		{name: "index", val: args{Count: 3, Index: 3}, fields: []string{"index"}},
	}

	t.Log("Given the need to validate command arguments.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen checking %+v.", testID, tst.val)
			{
				f := func(t *testing.T) {
					err := validate.Check(tst.val)

					if len(tst.fields) == 0 {
						if err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould accept the arguments: %v", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould accept the arguments.", success, testID)
						return
					}

					if !validate.IsFieldErrors(err) {
						t.Fatalf("\t%s\tTest %d:\tShould get field errors, got %v.", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould get field errors.", success, testID)

					fe := validate.GetFieldErrors(err)
					if len(fe) != len(tst.fields) {
						t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, fe)
						t.Logf("\t%s\tTest %d:\texp: %v", failed, testID, tst.fields)
						t.Fatalf("\t%s\tTest %d:\tShould get one error per bad field.", failed, testID)
					}
					for i, field := range tst.fields {
						if fe[i].Field != field {
							t.Fatalf("\t%s\tTest %d:\tShould name the flag %q, got %q.", failed, testID, field, fe[i].Field)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould name the flags in the errors.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
