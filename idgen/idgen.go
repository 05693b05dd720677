package idgen

import (
	"os"
	"strconv"
	"sync"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

const EnvMachineID = "HOUSEPROJECTS_MACHINE_ID"

var (
	// MachineID feeds sonyflake; a private-IP lookup is useless for a single household process.
	MachineID uint16 = 1

	defaultWorker     *sonyflake.Sonyflake
	defaultWorkerOnce sync.Once
)

func init() {
	if v := os.Getenv(EnvMachineID); v != "" {
		id, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			logrus.Warnf("ignore invalid %s '%s': %v", EnvMachineID, v, err)
			return
		}
		MachineID = uint16(id)
	}
}

func NewWorker() *sonyflake.Sonyflake {
	machineID := MachineID
	return sonyflake.NewSonyflake(sonyflake.Settings{
		MachineID: func() (uint16, error) {
			return machineID, nil
		},
	})
}

// NextID panics when the worker can not produce an id, the same as a failed allocation.
func NextID(idWorker *sonyflake.Sonyflake) types.ID {
	id, err := idWorker.NextID()
	if err != nil {
		panic(err)
	}
	return types.ID(id)
}

// Next draws from the process wide worker, so ids are unique across all collections.
func Next() types.ID {
	defaultWorkerOnce.Do(func() {
		defaultWorker = NewWorker()
	})
	return NextID(defaultWorker)
}
