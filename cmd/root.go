/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/femcore/utils"
)

var (
	cfgFile string
	prof    interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "femcore",
	Short: "Finite element mesh topology and shape function evaluation",
	Long: `femcore builds higher order finite element meshes from vertices and cells,
deduplicating nodes shared between elements with exact rational keys, and
evaluates Lagrange shape functions, their integrals and physical gradients.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if viper.GetBool("verbose") {
			level = log.DebugLevel
		}
		log.SetDefault(newLogger(os.Stderr, level))
		utils.SetParallelDegree(viper.GetInt("parallel"))
		if dir := viper.GetString("cpuprofile"); dir != "" {
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet)
			log.Info("CPU profiling", "dir", dir)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if prof != nil {
			prof.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.femcore.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging, including timings of each stage")
	rootCmd.PersistentFlags().IntP("parallel", "p", 0, "goroutines used by parallel loops, 0 = number of CPUs")
	rootCmd.PersistentFlags().String("cpuprofile", "", "directory to write a CPU profile into")
	for _, name := range []string{"verbose", "parallel", "cpuprofile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".femcore" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".femcore")
	}

	viper.SetEnvPrefix("FEMCORE")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
