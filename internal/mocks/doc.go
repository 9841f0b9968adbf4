// Package mocks provides centralized mock implementations for testing.
//
// Service mocks use function fields: set the Fn for the behavior a test
// needs and leave the rest nil.
//
//	persons := &mocks.MockPersonsService{
//	    GetPersonByIDFn: func(ctx context.Context, id int64) (*domain.Person, bool, error) {
//	        return nil, false, nil
//	    },
//	}
//
// Store mocks embed testify's mock.Mock and are driven with On/Return.
// Their WithTx returns the receiver, so combined with PassthroughTxRunner a
// service's transactional path runs against the same expectations.
package mocks
